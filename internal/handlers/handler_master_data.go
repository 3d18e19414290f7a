package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/freight_desk/internal/core/domain"
	portssvc "github.com/SscSPs/freight_desk/internal/core/ports/services"
	"github.com/SscSPs/freight_desk/internal/dto"
	"github.com/gin-gonic/gin"
)

type masterDataHandler struct {
	portService     portssvc.PortSvc
	customerService portssvc.CustomerSvc
}

// registerMasterDataRoutes registers the port and customer routes.
func registerMasterDataRoutes(rg *gin.RouterGroup, portService portssvc.PortSvc, customerService portssvc.CustomerSvc) {
	h := &masterDataHandler{portService: portService, customerService: customerService}

	ports := rg.Group("/ports")
	{
		ports.GET("", h.listPorts)
		ports.POST("", h.createPort)
	}

	customers := rg.Group("/customers")
	{
		customers.GET("", h.listCustomers)
		customers.POST("", h.createCustomer)
		customers.GET("/:id", h.getCustomer)
	}
}

// listPorts godoc
// @Summary List active ports
// @Tags master-data
// @Produce  json
// @Param   type query string false "SEA or AIR; BOTH ports always match"
// @Success 200 {array} domain.Port
// @Security BearerAuth
// @Router /ports [get]
func (h *masterDataHandler) listPorts(c *gin.Context) {
	var portType *domain.PortType
	if raw := strings.ToUpper(c.Query("type")); raw != "" {
		pt := domain.PortType(raw)
		if pt != domain.PortTypeSea && pt != domain.PortTypeAir && pt != domain.PortTypeBoth {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be SEA, AIR or BOTH"})
			return
		}
		portType = &pt
	}

	ports, err := h.portService.ListPorts(c.Request.Context(), portType)
	if err != nil {
		respondWithError(c, err, "Failed to list ports")
		return
	}
	c.JSON(http.StatusOK, ports)
}

// createPort godoc
// @Summary Create a port
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   port body dto.CreatePortRequest true "Port"
// @Success 201 {object} domain.Port
// @Failure 409 {object} map[string]string "Port code already exists"
// @Security BearerAuth
// @Router /ports [post]
func (h *masterDataHandler) createPort(c *gin.Context) {
	var req dto.CreatePortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	port, err := h.portService.CreatePort(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to create port")
		return
	}
	c.JSON(http.StatusCreated, port)
}

// listCustomers godoc
// @Summary List customers
// @Tags master-data
// @Produce  json
// @Param   active query bool false "Filter by active flag"
// @Success 200 {array} domain.Customer
// @Security BearerAuth
// @Router /customers [get]
func (h *masterDataHandler) listCustomers(c *gin.Context) {
	var active *bool
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "active must be a boolean"})
			return
		}
		active = &v
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), active)
	if err != nil {
		respondWithError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// getCustomer godoc
// @Summary Get a customer
// @Tags master-data
// @Produce  json
// @Param   id path int true "Customer ID"
// @Success 200 {object} domain.Customer
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *masterDataHandler) getCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer id must be an integer"})
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// createCustomer godoc
// @Summary Create a customer
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer"
// @Success 201 {object} domain.Customer
// @Failure 409 {object} map[string]string "Customer code already exists"
// @Security BearerAuth
// @Router /customers [post]
func (h *masterDataHandler) createCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, customer)
}
