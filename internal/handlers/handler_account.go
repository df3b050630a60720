package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/object_dto/internal/core/ports/services"
	"github.com/SscSPs/object_dto/internal/dto"
	"github.com/SscSPs/object_dto/internal/middleware"
	"github.com/SscSPs/object_dto/pkg/objectdto"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	mapper         *objectdto.Mapper
}

func newAccountHandler(as portssvc.AccountSvcFacade, mapper *objectdto.Mapper) *accountHandler {
	return &accountHandler{accountService: as, mapper: mapper}
}

// RegisterAccountRoutes registers account routes on an authenticated group.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, mapper *objectdto.Mapper) {
	h := newAccountHandler(accountService, mapper)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account owned by the logged-in user. openingBalance is a decimal string and must be non-zero unless zero values are accepted.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body objectdto.Payload true "Account details under data: name, accountType, currencyCode, openingBalance"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Missing or empty fields"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	req, ok := bindPayload[dto.CreateAccountRequest](c, h.mapper)
	if !ok {
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), *req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create account")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account created", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, h.mapper.Project(account, dto.AccountResponseShape))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Account belongs to another user"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, h.mapper.Project(account, dto.AccountResponseShape))
}

// listAccounts godoc
// @Summary List accounts
// @Description Retrieves a page of the logged-in user's accounts
// @Tags accounts
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list accounts")
		return
	}

	resp := dto.ListAccountsResponse{Accounts: make([]objectdto.Record, len(accounts))}
	for i := range accounts {
		resp.Accounts[i] = h.mapper.Project(accounts[i], dto.AccountResponseShape)
	}
	c.JSON(http.StatusOK, resp)
}
