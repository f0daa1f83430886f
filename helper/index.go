package helper

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"food_delivery/constants"
	"food_delivery/model"
)

func JwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GetUserByEmail(db *gorm.DB, email string) (*model.User, error) {
	var user model.User
	if err := db.Where(&model.User{Email: email}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["id"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["jti"] = uuid.NewString()
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret())
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["id"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["jti"] = uuid.NewString()
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret())
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Xác thực thuật toán ký là HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret(), nil
	})

	return token, err
}

// GetInfoUserFromToken đọc user từ token trong Locals, trả về claim và cờ admin.
// Token đã qua middleware Protected nên luôn tồn tại và hợp lệ.
func GetInfoUserFromToken(c *fiber.Ctx, db *gorm.DB) (model.TokenClaim, bool, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false, errors.New("no token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false, errors.New("invalid token claims")
	}

	idFloat, ok := claims["id"].(float64)
	if !ok || idFloat == 0 {
		return model.TokenClaim{}, false, errors.New("invalid id in token")
	}

	var user model.User
	if err := db.First(&user, uint(idFloat)).Error; err != nil {
		return model.TokenClaim{}, false, err
	}

	tokenClaim := model.TokenClaim{
		UserId: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
	return tokenClaim, user.Role == constants.ROLE_ADMIN, nil
}

// GetOptionalUserId lấy id người dùng nếu đã đăng nhập, nil nếu là guest
func GetOptionalUserId(c *fiber.Ctx, db *gorm.DB) (*uint, *model.User) {
	u := c.Locals("user")
	if u == nil {
		return nil, nil
	}

	token, ok := u.(*jwt.Token)
	if !ok || token == nil {
		return nil, nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil
	}
	idFloat, ok := claims["id"].(float64)
	if !ok || idFloat == 0 {
		return nil, nil
	}

	var user model.User
	if err := db.First(&user, uint(idFloat)).Error; err != nil {
		return nil, nil
	}
	id := user.ID
	return &id, &user
}
