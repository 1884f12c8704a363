package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/service"
)

type AccountController struct {
	accountService service.AccountService
}

func NewAccountController(accountService service.AccountService) *AccountController {
	return &AccountController{accountService: accountService}
}

// Register godoc
// @Summary Provision a new account
// @Description Create a user plus one detail row per granted role, atomically. An absent student flag defaults to true.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param user body dto.UserCreateDTO true "Account data"
// @Success 201 {object} dto.UserCreatedDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (ctrl *AccountController) Register(c *gin.Context) {
	var req dto.UserCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind UserCreateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	created, err := ctrl.accountService.Register(req)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to register user")
		writeError(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Login godoc
// @Summary Authenticate a user
// @Description Verify credentials and issue a 24h session token.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "Login credentials"
// @Success 200 {object} dto.LoginResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Router /login [post]
func (ctrl *AccountController) Login(c *gin.Context) {
	var req dto.LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := ctrl.accountService.Login(req)
	if err != nil {
		writeError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CheckUser godoc
// @Summary Check whether an email is registered
// @Tags Accounts
// @Produce json
// @Param email query string true "Email to check"
// @Success 200 {object} dto.UserExistsDTO
// @Failure 400 {object} dto.ErrorResponse "Missing email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /check-user [get]
func (ctrl *AccountController) CheckUser(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "email query parameter is required"})
		return
	}

	resp, err := ctrl.accountService.CheckUser(email)
	if err != nil {
		writeError(c, err, "Failed to check user")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CheckUserType godoc
// @Summary Look up the roles an email holds
// @Tags Accounts
// @Produce json
// @Param email query string true "Email to look up"
// @Success 200 {object} dto.UserTypeDTO
// @Failure 400 {object} dto.ErrorResponse "Missing email"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /user-type [get]
func (ctrl *AccountController) CheckUserType(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "email query parameter is required"})
		return
	}

	resp, err := ctrl.accountService.CheckUserType(email)
	if err != nil {
		writeError(c, err, "Failed to look up user type")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CheckPassword godoc
// @Summary Verify a password without logging in
// @Tags Accounts
// @Accept json
// @Produce json
// @Param credentials body dto.PasswordCheckDTO true "Email and password"
// @Success 200 {object} dto.PasswordValidDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /check-password [post]
func (ctrl *AccountController) CheckPassword(c *gin.Context) {
	var req dto.PasswordCheckDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := ctrl.accountService.CheckPassword(req)
	if err != nil {
		writeError(c, err, "Failed to check password")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecoverPassword godoc
// @Summary Request password recovery
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.PasswordRecoveryDTO true "Registered email"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Email not registered"
// @Router /password-recovery [post]
func (ctrl *AccountController) RecoverPassword(c *gin.Context) {
	var req dto.PasswordRecoveryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := ctrl.accountService.RecoverPassword(req)
	if err != nil {
		writeError(c, err, "Failed to process recovery request")
		return
	}
	c.JSON(http.StatusOK, resp)
}
