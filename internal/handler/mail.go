package handler

import (
	"log/slog"
	"net/http"

	"github.com/campusevents/campus-events/internal/service"
)

// MailHandler serves the notification sink endpoint. Whatever the request
// body claims, the composed notification always goes to the one configured
// recipient; the recipient is never derived from the payload.
type MailHandler struct {
	mailer    service.Mailer
	recipient string
}

// NewMailHandler creates a new MailHandler.
func NewMailHandler(mailer service.Mailer, recipient string) *MailHandler {
	return &MailHandler{mailer: mailer, recipient: recipient}
}

// HandleSendEmail implements the sink contract:
//
//	OPTIONS /api/send-email -> 200, empty body (CORS preflight)
//	POST    /api/send-email -> {"success":true,...} or 500 {"success":false,"error":...}
//	anything else           -> 405
//
// CORS allows any origin with methods GET/POST/OPTIONS and the Content-Type
// header. The route is registered without a method pattern so every method
// reaches this handler.
func (h *MailHandler) HandleSendEmail(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var notice service.RegistrationNotice
	if err := readJSON(r, &notice); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Invalid request body.",
		})
		return
	}

	subject, body, err := service.ComposeRegistrationEmail(notice)
	if err != nil {
		slog.Error("compose registration email", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	slog.Info("sending registration email", "to", h.recipient, "event", notice.EventTitle)
	if err := h.mailer.Send(r.Context(), h.recipient, subject, body); err != nil {
		slog.Error("send registration email", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Registration email sent successfully",
		"recipient": h.recipient,
	})
}
