package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/config"
	"github.com/example/pepine/internal/models"
	"github.com/example/pepine/internal/utils"
)

// AuthService implements registration, login and the password flows.
type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer Mailer
}

// NewAuthService constructs an AuthService.
func NewAuthService(db *gorm.DB, cfg *config.Config, mailer Mailer) *AuthService {
	return &AuthService{db: db, cfg: cfg, mailer: mailer}
}

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	Phone     string
}

// Register creates a user with a hashed password and returns it with a
// fresh session token.
func (s *AuthService) Register(input RegisterInput) (*models.User, string, error) {
	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, "", apperrors.Internalf("failed to hash password")
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}

	user := models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hash,
		Role:      role,
		IsActive:  true,
		Phone:     input.Phone,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", apperrors.FromDB(err, "user not found")
	}

	token, err := s.token(&user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// Login verifies the credentials and returns the user with a session
// token. Both an unknown email and a wrong password yield Unauthorized.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ?", utils.NormalizeEmail(email)).First(&user).Error; err != nil {
		return nil, "", apperrors.Unauthorizedf("invalid credentials (email)")
	}

	if !utils.CheckPassword(user.Password, password) {
		return nil, "", apperrors.Unauthorizedf("invalid credentials (password)")
	}

	token, err := s.token(&user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// ForgotPassword mails a signed reset token to the given address. Mail
// transport failures are classified before they surface.
func (s *AuthService) ForgotPassword(email string) error {
	var user models.User
	if err := s.db.Where("email = ?", utils.NormalizeEmail(email)).First(&user).Error; err != nil {
		return apperrors.NotFoundf("no user was found with this email")
	}

	token, err := s.token(&user)
	if err != nil {
		return err
	}

	body := fmt.Sprintf(`
      <h1>Réinitialisation de mot de passe</h1>
      <p>Bonjour,</p>
      <p>Vous avez demandé une réinitialisation de mot de passe. Cliquez sur le bouton ci-dessous pour réinitialiser votre mot de passe :</p>
      <a href="%s/%s" style="background-color: #F79323; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Réinitialiser le mot de passe</a>
      <p>Si vous n'avez pas demandé de réinitialisation de mot de passe, ignorez simplement cet e-mail.</p>`,
		s.cfg.ResetPasswordURL, token)

	if err := s.mailer.Send(user.Email, "Changement de mot de passe", body); err != nil {
		return ClassifyMailError(err)
	}

	return nil
}

// ResetPassword validates the emailed token and stores the new password.
func (s *AuthService) ResetPassword(token, newPassword string) (*models.User, error) {
	claims, err := utils.ParseToken(s.cfg.JWTSecret, token)
	if err != nil {
		return nil, apperrors.BadRequestf("the link has expired or is not valid")
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, apperrors.BadRequestf("the link has expired or is not valid")
	}

	return s.setPassword(userID.String(), newPassword)
}

// UpdatePassword verifies the current password before storing a new one.
func (s *AuthService) UpdatePassword(user *models.User, current, newPassword string) error {
	if !utils.CheckPassword(user.Password, current) {
		return apperrors.Unauthorizedf("invalid credentials (password)")
	}

	_, err := s.setPassword(user.ID.String(), newPassword)
	return err
}

func (s *AuthService) setPassword(id, password string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "user not found")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperrors.Internalf("failed to hash password")
	}

	user.Password = hash
	if err := s.db.Save(&user).Error; err != nil {
		return nil, apperrors.FromDB(err, "user not found")
	}

	return &user, nil
}

func (s *AuthService) token(user *models.User) (string, error) {
	token, err := utils.GenerateToken(s.cfg.JWTSecret, user.ID, user.Email, user.Role, s.cfg.TokenExpires)
	if err != nil {
		return "", apperrors.Internalf("failed to generate token")
	}
	return token, nil
}
