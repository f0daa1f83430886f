package constants

const (
	ROLE_ADMIN    = "admin"
	ROLE_CUSTOMER = "customer"
)

const (
	ORDER_STATUS_PENDING   = "Pending"
	ORDER_STATUS_CONFIRMED = "Confirmed"
	ORDER_STATUS_SHIPPING  = "Shipping"
	ORDER_STATUS_DELIVERED = "Delivered"
	ORDER_STATUS_CANCELLED = "Cancelled"
)

// ORDER_STATUSES danh sách trạng thái hợp lệ của đơn hàng
var ORDER_STATUSES = []string{
	ORDER_STATUS_PENDING,
	ORDER_STATUS_CONFIRMED,
	ORDER_STATUS_SHIPPING,
	ORDER_STATUS_DELIVERED,
	ORDER_STATUS_CANCELLED,
}

// Thư mục ảnh món ăn mặc định
const IMAGE_FOLDER = "images/"

const (
	ERROR_INTERNAL_ERROR      = "Lỗi hệ thống. Vui lòng thử lại."
	ERROR_INPUT               = "Dữ liệu không hợp lệ."
	DATA_INPUT_IS_NOT_NUMBER  = "Tham số phải là số."
	NOT_ADMIN                 = "Không có quyền truy cập."
	NOT_FOUND_RECORDS         = "Không tìm thấy dữ liệu."
	MISSING_LOGIN_INPUT       = "Vui lòng điền đầy đủ email và mật khẩu."
	MISSING_REGISTER_INPUT    = "Vui lòng điền đầy đủ thông tin đăng kí."
	INVALID_CREDENTIALS       = "Email hoặc mật khẩu không chính xác."
	INVALID_EMAIL             = "Email không hợp lệ."
	EMAIL_EXISTS              = "Email này đã được đăng kí. Vui lòng sử dụng email khác."
	REGISTER_SUCCESS          = "Đăng kí thành công! Bạn có thể đăng nhập ngay bây giờ."
	LOGIN_SUCCESS             = "Đăng nhập thành công!"
	LOGOUT_SUCCESS            = "Đăng xuất thành công."
	NOT_LOGGED_IN             = "Người dùng chưa đăng nhập."
	CAN_NOT_HASH_PASSWORD     = "Không thể mã hóa mật khẩu."
	MISSING_ORDER_INPUT       = "Dữ liệu đơn hàng không đầy đủ."
	EMPTY_CART                = "Giỏ hàng không được để trống."
	ORDER_FAILED              = "Đặt hàng thất bại. Vui lòng thử lại."
	ORDER_NOT_FOUND           = "Không tìm thấy đơn hàng."
	INVALID_ORDER_STATUS      = "Trạng thái không hợp lệ."
	UPDATE_STATUS_SUCCESS     = "Cập nhật trạng thái thành công."
	SAVE_CATEGORY_SUCCESS     = "Lưu danh mục thành công."
	DELETE_CATEGORY_SUCCESS   = "Xóa danh mục thành công."
	CATEGORY_NOT_FOUND        = "Không tìm thấy danh mục."
	SAVE_DISH_SUCCESS         = "Lưu sản phẩm thành công."
	DELETE_DISH_SUCCESS       = "Xóa sản phẩm thành công."
	DISH_NOT_FOUND            = "Không tìm thấy sản phẩm."
	LOAD_DISHES_SUCCESS       = "Tải món ăn thành công."
	LOAD_CATEGORIES_SUCCESS   = "Tải danh mục thành công."
	LOAD_ORDERS_SUCCESS       = "Tải đơn hàng thành công."
	LOAD_STATISTICS_SUCCESS   = "Tải thống kê thành công."
	UNSUPPORTED_IMAGE_FORMAT  = "Chỉ hỗ trợ PNG, JPG, JPEG."
	UPLOAD_FAILED             = "Upload thất bại."
)
