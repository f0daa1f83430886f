package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// OrderConfirmationData dữ liệu cho template email xác nhận đơn hàng
type OrderConfirmationData struct {
	OrderCode       string
	ReceiverName    string
	DeliveryAddress string
	TotalAmount     int
	PaymentMethod   string
	Items           []OrderConfirmationItem
}

type OrderConfirmationItem struct {
	Name     string
	Quantity int
	Price    int
}

// SendOrderConfirmationEmail gửi email xác nhận đơn hàng (async)
func SendOrderConfirmationEmail(to string, data OrderConfirmationData) {
	go func() { // Async để không delay response
		tmplPath := "templates/order_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Lỗi load template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		subject := fmt.Sprintf("Xác nhận đơn hàng %s", data.OrderCode)
		if err := sendMail(to, subject, body.String()); err != nil {
			log.Printf("Lỗi gửi email xác nhận đơn %s: %v", data.OrderCode, err)
		}
	}()
}

// StatisticsReportData dữ liệu cho email báo cáo thống kê hàng ngày
type StatisticsReportData struct {
	Date            string
	TotalOrders     int64
	TotalProducts   int64
	TotalCategories int64
	TotalRevenue    int64
}

func SendStatisticsReportEmail(to string, data StatisticsReportData) error {
	body := fmt.Sprintf(
		"<h3>Báo cáo ngày %s</h3>"+
			"<p>Tổng đơn hàng: %d</p>"+
			"<p>Tổng món ăn: %d</p>"+
			"<p>Tổng danh mục: %d</p>"+
			"<p>Doanh thu (đơn đã giao): %d VND</p>",
		data.Date, data.TotalOrders, data.TotalProducts, data.TotalCategories, data.TotalRevenue)

	subject := fmt.Sprintf("Báo cáo thống kê %s", data.Date)
	return sendMail(to, subject, body)
}

func sendMail(to, subject, htmlBody string) error {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	port, _ := strconv.Atoi(portStr)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(host, port, username, password)
	return d.DialAndSend(m)
}
