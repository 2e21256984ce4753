package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/duskpine/leaguebot/internal/lobby"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ScheduleHandler dumps the raw schedule document for a guild as JSON.
// Meant for debugging on test servers.
func (s *Server) ScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID := r.URL.Query().Get("guildID")
		if guildID == "" {
			http.Error(w, "guildID is required", http.StatusBadRequest)
			return
		}

		idx, err := s.Schedule.Load(guildID)
		if err != nil {
			log.Error("Failed to load schedule", "error", err, "guildID", guildID)
			http.Error(w, "Failed to load schedule", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(idx); err != nil {
			log.Error("Failed to encode schedule to JSON", "error", err)
		}
	}
}

func (s *Server) ClearScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID := r.URL.Query().Get("guildID")
		if guildID == "" {
			http.Error(w, "guildID is required", http.StatusBadRequest)
			return
		}

		isDryRun := isDryRunFromContext(r)
		if isDryRun {
			log.Info("[Dry Run] Would clear schedule", "guildID", guildID)
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Schedule cleared! (dry run)")
			return
		}

		log.Info("Received request to clear schedule", "guildID", guildID)
		if err := s.Schedule.Clear(guildID); err != nil {
			log.Error("Failed to clear schedule", "error", err, "guildID", guildID)
			http.Error(w, "Failed to clear schedule", http.StatusInternalServerError)
			return
		}
		if s.OpsLog != nil {
			if err := s.OpsLog.ScheduleCleared(guildID, isDryRun); err != nil {
				log.Warn("Failed to post schedule-cleared audit message", "error", err)
			}
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Schedule cleared!")
		log.Info("Schedule cleared successfully", "guildID", guildID)
	}
}

// NotifyLobbyHandler is the push endpoint for the lobby-ready topic. The
// subscription delivers the job base64-encoded inside a JSON wrapper.
func (s *Server) NotifyLobbyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received lobby-ready message", "body", string(bodyBytes))

		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		isDryRun := isDryRunFromContext(r)
		job := lobby.Job{}
		if err := s.pubsub.ProcessMessage(rawData, &job); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		if err := s.Messenger.SendLobbyReady(job, isDryRun); err != nil {
			log.Error("Failed to deliver lobby-ready notification", "error", err, "job", job.ID)
			http.Error(w, "Failed to deliver notification", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
