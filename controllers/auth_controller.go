package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stayspot-api/middleware"
	"stayspot-api/models"
	"stayspot-api/services"
	"stayspot-api/utils"
)

type AuthController struct {
	db           *gorm.DB
	jwtSecret    string
	emailService *services.EmailService
}

func NewAuthController(db *gorm.DB, jwtSecret string, emailService *services.EmailService) *AuthController {
	return &AuthController{
		db:           db,
		jwtSecret:    jwtSecret,
		emailService: emailService,
	}
}

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Credential string `json:"credential"`
	Password   string `json:"password"`
}

type SessionResponse struct {
	User models.SafeUser `json:"user"`
}

// Signup handles POST /api/users: creates the account, sets the session
// cookie and returns the safe user.
func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	errors := make(map[string]string)
	if !utils.IsValidEmail(req.Email) {
		errors["email"] = "Invalid email."
	}
	if !utils.IsValidUsername(req.Username) {
		errors["username"] = "Username is required"
	}
	if req.FirstName == "" {
		errors["firstName"] = "First Name is required"
	}
	if req.LastName == "" {
		errors["lastName"] = "Last Name is required"
	}
	if len(req.Password) < 6 {
		errors["password"] = "Password must be 6 characters or more"
	}
	if len(errors) > 0 {
		utils.SendValidationError(c, errors)
		return
	}

	// Duplicate email/username both reported in one response
	var existingUser models.User
	existingErrors := make(map[string]string)
	if err := ac.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		existingErrors["email"] = "User with that email already exists"
	}
	if err := ac.db.Where("username = ?", req.Username).First(&existingUser).Error; err == nil {
		existingErrors["username"] = "User with that username already exists"
	}
	if len(existingErrors) > 0 {
		utils.SendErrorWithFields(c, http.StatusInternalServerError, "User already exists", existingErrors)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendInternalError(c, "Failed to hash password")
		return
	}

	user := models.User{
		ID:             uuid.New().String(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: string(hashedPassword),
	}

	if err := ac.db.Create(&user).Error; err != nil {
		utils.SendInternalError(c, "Failed to create user")
		return
	}

	if err := ac.setSessionCookie(c, user.ID); err != nil {
		utils.SendInternalError(c, "Failed to generate token")
		return
	}

	go func() {
		if err := ac.emailService.SendWelcomeEmail(user.Email, user.FirstName); err != nil {
			fmt.Printf("Failed to send welcome email: %v\n", err)
		}
	}()

	c.JSON(http.StatusCreated, SessionResponse{User: user.Safe()})
}

// Login handles POST /api/session. Credential matches either username or
// email.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	errors := make(map[string]string)
	if req.Credential == "" {
		errors["credential"] = "Email or username is required"
	}
	if req.Password == "" {
		errors["password"] = "Password is required"
	}
	if len(errors) > 0 {
		utils.SendValidationError(c, errors)
		return
	}

	var user models.User
	if err := ac.db.Where("email = ? OR username = ?", req.Credential, req.Credential).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := ac.setSessionCookie(c, user.ID); err != nil {
		utils.SendInternalError(c, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, SessionResponse{User: user.Safe()})
}

// Restore handles GET /api/session: returns the current user, or user:null
// without a valid session.
func (ac *AuthController) Restore(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	var user models.User
	if err := ac.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{User: user.Safe()})
}

// Logout handles DELETE /api/session by clearing the session cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

func (ac *AuthController) setSessionCookie(c *gin.Context, userID string) error {
	token, err := ac.generateJWT(userID)
	if err != nil {
		return err
	}

	c.SetCookie(middleware.SessionCookieName, token, int((time.Hour * 24 * 7).Seconds()), "/", "", false, true)
	return nil
}

func (ac *AuthController) generateJWT(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
