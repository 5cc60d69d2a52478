package handler

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/suto6/whatsevent/docs"
	"github.com/suto6/whatsevent/internal/domain"
	"github.com/suto6/whatsevent/internal/dto"
	"github.com/suto6/whatsevent/internal/service"
	"github.com/suto6/whatsevent/internal/whatsapp"
)

// chatErrorReply is returned with HTTP 200 when answering fails after the
// event was resolved. The chat surface stays conversational; only bad input
// and unknown events get error statuses.
const chatErrorReply = "Sorry, I encountered an error while processing your question. Please try again later."

type Handler struct {
	eventService service.EventServicer
	bot          whatsapp.Responder
	sender       whatsapp.MessageSender
	uploadDir    string
	router       *gin.Engine
	log          *zap.Logger
}

func NewHandler(eventService service.EventServicer, bot whatsapp.Responder, sender whatsapp.MessageSender, uploadDir string, log *zap.Logger) *Handler {
	h := &Handler{
		eventService: eventService,
		bot:          bot,
		sender:       sender,
		uploadDir:    uploadDir,
		router:       gin.Default(),
		log:          log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)

	api := h.router.Group("/api")
	{
		api.POST("/event/create", h.createEvent)
		api.POST("/event/create-with-pdf", h.createEventWithPDF)
		api.GET("/event", h.listEvents)
		api.GET("/event/:id", h.getEvent)
		api.PUT("/event/:id", h.updateEvent)
		api.DELETE("/event/:id", h.deleteEvent)
		api.POST("/chat", h.chat)
		api.POST("/whatsapp/webhook", h.whatsappWebhook)
		api.POST("/whatsapp/send", h.sendWhatsApp)
	}

	h.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// createEvent handles POST /api/event/create
// @Summary Create an event
// @Description Create a new event and derive its chat context
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event data"
// @Success 201 {object} dto.CreateEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/event/create [post]
func (h *Handler) createEvent(c *gin.Context) {
	var req dto.CreateEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create event request",
			zap.Error(err),
			zap.String("name", req.Name))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.eventService.CreateEvent(&req)
	if err != nil {
		h.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("name", req.Name))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// createEventWithPDF handles POST /api/event/create-with-pdf
// @Summary Create an event from a PDF
// @Description Create a new event whose details are augmented with text extracted from an uploaded PDF
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Param pdf formData file true "PDF document"
// @Param name formData string true "Event name"
// @Param organizer formData string true "Organizer name"
// @Param details formData string true "Event details"
// @Success 201 {object} dto.CreateEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/event/create-with-pdf [post]
func (h *Handler) createEventWithPDF(c *gin.Context) {
	file, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "pdf file is required",
		})
		return
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_file",
			Message: "only PDF files are accepted",
		})
		return
	}

	req, err := h.bindEventForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	dst := filepath.Join(h.uploadDir, uuid.NewString()+".pdf")
	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.log.Error("Failed to save uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: "failed to save uploaded file",
		})
		return
	}

	response, err := h.eventService.CreateEventWithPDF(req, dst)
	if err != nil {
		h.log.Error("Failed to create event from pdf",
			zap.Error(err),
			zap.String("name", req.Name))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// bindEventForm reads event fields from a multipart form. FAQs arrive as a
// JSON-encoded array in the "faqs" field.
func (h *Handler) bindEventForm(c *gin.Context) (*dto.CreateEventRequest, error) {
	req := &dto.CreateEventRequest{
		Name:           c.PostForm("name"),
		Organizer:      c.PostForm("organizer"),
		Details:        c.PostForm("details"),
		Time:           c.PostForm("time"),
		StartTime:      c.PostForm("startTime"),
		EndTime:        c.PostForm("endTime"),
		Date:           c.PostForm("date"),
		ContactNumber:  c.PostForm("contactNumber"),
		WhatsAppNumber: c.PostForm("whatsappNumber"),
	}

	if req.Name == "" || req.Organizer == "" || req.Details == "" {
		return nil, errors.New("name, organizer and details are required")
	}

	if raw := c.PostForm("faqs"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.FAQs); err != nil {
			return nil, errors.New("faqs must be a JSON array of question/answer pairs")
		}
	}

	return req, nil
}

// listEvents handles GET /api/event
// @Summary List events
// @Description List all events, newest first
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/event [get]
func (h *Handler) listEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents()
	if err != nil {
		h.log.Error("Failed to list events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, events)
}

// getEvent handles GET /api/event/:id
// @Summary Get an event
// @Description Fetch a single event by id
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/event/{id} [get]
func (h *Handler) getEvent(c *gin.Context) {
	event, err := h.eventService.GetEvent(c.Param("id"))
	if err != nil {
		h.respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// updateEvent handles PUT /api/event/:id
// @Summary Update an event
// @Description Replace an event's fields and regenerate its chat context
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body dto.UpdateEventRequest true "Event data"
// @Success 200 {object} domain.Event
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/event/{id} [put]
func (h *Handler) updateEvent(c *gin.Context) {
	var req dto.UpdateEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid update event request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Param("id"), &req)
	if err != nil {
		h.respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// deleteEvent handles DELETE /api/event/:id
// @Summary Delete an event
// @Description Remove an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/event/{id} [delete]
func (h *Handler) deleteEvent(c *gin.Context) {
	if err := h.eventService.DeleteEvent(c.Param("id")); err != nil {
		h.respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// chat handles POST /api/chat
// @Summary Ask the event assistant
// @Description Answer a question using the event's stored context
// @Tags chat
// @Accept json
// @Produce json
// @Param message body dto.ChatRequest true "Chat message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/chat [post]
func (h *Handler) chat(c *gin.Context) {
	var req dto.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	reply, err := h.eventService.Chat(req.EventID, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "not_found",
				Message: "event not found",
			})
			return
		}

		h.log.Error("Chat failed",
			zap.Error(err),
			zap.String("event_id", req.EventID))
		c.JSON(http.StatusOK, dto.ChatResponse{Response: chatErrorReply})
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Response: reply})
}

// twiml is the minimal response document Twilio expects from a webhook.
type twiml struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// whatsappWebhook handles POST /api/whatsapp/webhook
// @Summary WhatsApp inbound webhook
// @Description Twilio webhook for inbound WhatsApp messages, responds with TwiML
// @Tags whatsapp
// @Accept x-www-form-urlencoded
// @Produce xml
// @Param From formData string true "Sender number"
// @Param Body formData string true "Message body"
// @Success 200 {string} string "TwiML response"
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/whatsapp/webhook [post]
func (h *Handler) whatsappWebhook(c *gin.Context) {
	from := c.PostForm("From")
	body := c.PostForm("Body")

	if from == "" || body == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "From and Body are required",
		})
		return
	}

	reply := h.bot.HandleMessage(from, body)

	payload, err := xml.Marshal(twiml{Message: reply})
	if err != nil {
		h.log.Error("Failed to render TwiML", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: "failed to render response",
		})
		return
	}

	c.Data(http.StatusOK, "text/xml", payload)
}

// sendWhatsApp handles POST /api/whatsapp/send
// @Summary Send a WhatsApp message
// @Description Send an outbound WhatsApp message through Twilio
// @Tags whatsapp
// @Accept json
// @Produce json
// @Param message body dto.SendWhatsAppRequest true "Message data"
// @Success 200 {object} dto.SendWhatsAppResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/whatsapp/send [post]
func (h *Handler) sendWhatsApp(c *gin.Context) {
	var req dto.SendWhatsAppRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid send request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if err := h.sender.Send(req.To, req.Message); err != nil {
		h.log.Error("Failed to send WhatsApp message",
			zap.Error(err),
			zap.String("to", req.To))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: "failed to send message",
		})
		return
	}

	c.JSON(http.StatusOK, dto.SendWhatsAppResponse{
		Success: true,
		Message: "Message sent successfully",
	})
}

// respondEventError maps service errors on the event CRUD paths.
func (h *Handler) respondEventError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrEventNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "not_found",
			Message: "event not found",
		})
		return
	}

	h.log.Error("Event operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	})
}
