package server

import (
	"context"
	"net/http"
	"time"

	"careerbot/internal/tracker"
	"careerbot/internal/types"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// tracerName is the instrumentation scope for API handler spans.
const tracerName = "careerbot.api"

// startSpan opens a handler span, or a no-op span before observability
// is initialized.
func (s *Server) startSpan(ctx context.Context, name string) (context.Context, oteltrace.Span) {
	if s.obs == nil {
		return noop.NewTracerProvider().Tracer(tracerName).Start(ctx, name)
	}
	return s.obs.Tracer(tracerName).Start(ctx, name)
}

// addApplicationHandler registers a new tracked job application
func (s *Server) addApplicationHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.startSpan(r.Context(), "api.add_application")
	defer span.End()

	var input types.ApplicationInput
	if err := parseJSONRequest(r, &input); err != nil {
		span.RecordError(err)
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	app, err := s.Applications.Add(input)
	if err != nil {
		span.RecordError(err)
		s.metrics().RecordBusinessMetric(ctx, "application_tracked", false)
		writeAppError(w, err)
		return
	}

	span.SetAttributes(
		attribute.String("application.id", app.ID),
		attribute.String("application.status", string(app.Status)),
	)
	s.metrics().RecordBusinessMetric(ctx, "application_tracked", true,
		attribute.String("status", string(app.Status)))

	writeJSONStatus(w, http.StatusCreated, map[string]any{
		"message":     "Application added successfully",
		"application": app,
	})
}

// listApplicationsHandler returns all applications, newest first
func (s *Server) listApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.startSpan(r.Context(), "api.get_applications")
	defer span.End()

	apps := s.Applications.List()
	span.SetAttributes(attribute.Int("applications.count", len(apps)))

	writeJSON(w, map[string]any{
		"applications": apps,
		"total":        len(apps),
	})
}

// updateStatusHandler moves an application to a new lifecycle status
func (s *Server) updateStatusHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.startSpan(r.Context(), "api.update_status")
	defer span.End()

	var req UpdateStatusRequest
	if err := parseJSONRequest(r, &req); err != nil {
		span.RecordError(err)
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}
	if req.Status == "" {
		writeErrorResponse(w, "Status is required", "", http.StatusBadRequest)
		return
	}

	app, err := s.Applications.UpdateStatus(r.PathValue("id"), types.Status(req.Status))
	if err != nil {
		span.RecordError(err)
		writeAppError(w, err)
		return
	}

	span.SetAttributes(attribute.String("application.status", string(app.Status)))

	writeJSON(w, map[string]any{
		"message":     "Status updated successfully",
		"application": app,
	})
}

// deleteApplicationHandler removes an application from the tracker
func (s *Server) deleteApplicationHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.startSpan(r.Context(), "api.delete_application")
	defer span.End()

	if !s.Applications.Delete(r.PathValue("id")) {
		writeErrorResponse(w, "Application not found", "", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]any{
		"message": "Application deleted successfully",
	})
}

// remindersHandler lists follow-ups that are due today or overdue
func (s *Server) remindersHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.startSpan(r.Context(), "api.get_reminders")
	defer span.End()

	reminders := s.Applications.Reminders(time.Now())
	span.SetAttributes(attribute.Int("reminders.count", len(reminders)))

	writeJSON(w, map[string]any{
		"reminders": reminders,
		"count":     len(reminders),
	})
}

// statisticsHandler aggregates the state of every tracked application
func (s *Server) statisticsHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.startSpan(r.Context(), "api.get_statistics")
	defer span.End()

	writeJSON(w, s.Applications.Statistics())
}

// generateEmailHandler renders a follow-up email template for an application
func (s *Server) generateEmailHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.startSpan(r.Context(), "api.generate_email")
	defer span.End()

	app, err := s.Applications.Get(r.PathValue("id"))
	if err != nil {
		span.RecordError(err)
		writeAppError(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"email_template": tracker.GenerateFollowUpEmail(app),
		"application":    app,
	})
}
