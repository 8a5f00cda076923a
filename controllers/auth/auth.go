package authController

import (
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	authValidator "lms/validators/auth"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRegister").(*authValidator.RegisterRequest)

	db := database.Database.Db

	// Duplicate email or user name is a uniqueness conflict
	var existing models.User
	if err := db.Where("email = ? OR name = ?", reqData.UserEmail, reqData.UserName).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User name or user email already exists", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.UserName,
		Email:    reqData.UserEmail,
		Password: string(hashedPassword),
		Role:     reqData.Role,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	go func(name, email string) {
		if err := utils.SendWelcomeEmail(name, email); err != nil {
			log.Printf("Error sending welcome email: %v", err)
		}
	}(newUser.Name, newUser.Email)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully!", nil)
}

func Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginRequest)

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.UserEmail, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully", fiber.Map{
		"accessToken": token,
		"user": fiber.Map{
			"_id":       user.ID,
			"userName":  user.Name,
			"userEmail": user.Email,
			"role":      user.Role,
		},
	})
}

// CheckAuth returns the identity embedded in a valid bearer token
func CheckAuth(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Authenticated user!", fiber.Map{
		"user": fiber.Map{
			"_id":       c.Locals("userId"),
			"userName":  c.Locals("userName"),
			"userEmail": c.Locals("userEmail"),
			"role":      c.Locals("userRole"),
		},
	})
}
