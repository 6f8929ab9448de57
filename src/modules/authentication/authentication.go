package authentication

import (
	"time"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/college"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/config"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/helpers"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// issueJwtToken generates a JWT token for authenticated users.
func issueJwtToken(userID string, name string, email string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)

	claims["sub"] = userID
	claims["name"] = name
	claims["email"] = email
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(30 * 24 * time.Hour).Unix()

	secretKey := config.Config("JWT_SECRET")
	return token.SignedString([]byte(secretKey))
}

type signUpInput struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Branch   string `json:"branch"`
	Semester int    `json:"semester"`
	College  string `json:"college" validate:"required"`
}

// SignUp handles user registration. The chosen college is cleaned once and
// frozen onto the profile together with its grouping key; it never changes
// afterward.
func SignUp(c *fiber.Ctx) error {
	db := database.DB

	input := new(signUpInput)
	if err := c.BodyParser(input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Missing or invalid fields", err)
	}

	pretty := college.Prettify(input.College)
	key := college.KeyOf(pretty)
	if key == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "College name is required", nil)
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to hash password", err)
	}

	profile := models.Profile{
		ID:         uuid.New(),
		FullName:   input.FullName,
		Email:      input.Email,
		Password:   string(hashedPwd),
		Branch:     input.Branch,
		Semester:   input.Semester,
		College:    pretty,
		CollegeKey: key,
	}

	if result := db.Create(&profile); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create user account", result.Error)
	}

	token, err := issueJwtToken(profile.ID.String(), profile.FullName, profile.Email)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to generate token", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Account created successfully", fiber.Map{"token": token, "college": pretty})
}

// SignIn handles user authentication.
func SignIn(c *fiber.Ctx) error {
	db := database.DB

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	profile := new(models.Profile)
	if result := db.Where("email = ?", input.Email).First(profile); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid login credentials", result.Error)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(input.Password)); err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid login credentials", err)
	}

	token, err := issueJwtToken(profile.ID.String(), profile.FullName, profile.Email)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to generate token", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Sign-in successful", fiber.Map{"token": token})
}

// SignOut exists for API symmetry; tokens are stateless so the client just
// discards its copy.
func SignOut(c *fiber.Ctx) error {
	return helpers.HandleSuccess(c, fiber.StatusOK, "Signed out", nil)
}
