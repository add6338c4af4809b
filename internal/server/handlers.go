package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/nao1215/osintnexus/internal/api"
	"github.com/nao1215/osintnexus/internal/catalog"
	"github.com/nao1215/osintnexus/internal/database"
	"github.com/nao1215/osintnexus/internal/model"
	"github.com/nao1215/osintnexus/internal/sample"
	"github.com/nao1215/osintnexus/internal/target"
)

// maxBodySize bounds the execute request body.
const maxBodySize = 64 << 10

// WelcomeMessage is the body of GET /.
const WelcomeMessage = "OSINT Nexus API - Enterprise Intelligence Platform"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": WelcomeMessage})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, api.Health{Status: "healthy", Timestamp: s.now()})
}

func (s *Server) handleOverview(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	overview := sample.RandomOverview(s.now(), s.rand, s.newID)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, overview)
}

func (s *Server) handleModules(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, api.ModuleList{Modules: catalog.All()})
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	moduleID := mux.Vars(r)["id"]
	module, ok := catalog.Lookup(moduleID)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Module not found")
		return
	}

	var req api.ExecuteRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := dec.Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	results, ok := cannedResults(moduleID, req.Tool, req.Target)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Module not found")
		return
	}

	if d := latencyFor(moduleID, s.latencyScale); d > 0 {
		timer := time.NewTimer(d)
		select {
		case <-timer.C:
		case <-r.Context().Done():
			timer.Stop()
			s.logger.Debug("execution cancelled by client", "module", moduleID, "tool", req.Tool)
			return
		}
	}

	kind := target.Classify(req.Target)
	s.record(r, module, req, kind, results)

	writeJSON(w, http.StatusOK, api.ExecuteResponse{
		Status:     string(model.StatusCompleted),
		TargetType: string(kind),
		Results:    results,
	})
}

// record saves an execution when a store is configured. Failures are
// logged and do not fail the request.
func (s *Server) record(r *http.Request, module catalog.Module, req api.ExecuteRequest, kind target.Kind, results map[string]any) {
	if s.store == nil {
		return
	}

	now := s.now()
	rec := database.Record{
		ID:         s.newID(),
		Module:     module.ShortName(),
		Tool:       req.Tool,
		Target:     strings.TrimSpace(req.Target),
		TargetType: string(kind),
		Status:     model.StatusCompleted,
		Results:    results,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.SaveInvestigation(r.Context(), rec); err != nil {
		s.logger.Warn("failed to record investigation", "module", module.ID, "error", err)
	}
}

func (s *Server) handleInvestigations(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		records, err := s.store.ListInvestigations(r.Context(), investigationLimit)
		if err != nil {
			s.logger.Warn("failed to list investigations", "error", err)
		}
		if len(records) > 0 {
			list := make([]api.Investigation, 0, len(records))
			for _, rec := range records {
				list = append(list, rec.Investigation())
			}
			writeJSON(w, http.StatusOK, api.InvestigationList{Investigations: list})
			return
		}
	}

	canned := sample.Investigations(s.now())
	for i := range canned {
		canned[i].ID = s.newID()
	}
	writeJSON(w, http.StatusOK, api.InvestigationList{Investigations: canned})
}

func (s *Server) handleNotifications(w http.ResponseWriter, _ *http.Request) {
	notifications := sample.Notifications(s.now())
	for i := range notifications {
		notifications[i].ID = s.newID()
	}
	writeJSON(w, http.StatusOK, api.NotificationList{Notifications: notifications})
}

func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	profile := sample.Profile(s.now())
	profile.ID = s.newID()
	writeJSON(w, http.StatusOK, profile)
}
