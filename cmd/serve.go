package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/johnfelipe/HarmonyLab/analysis"
	"github.com/johnfelipe/HarmonyLab/config"
	"github.com/johnfelipe/HarmonyLab/key"
	"github.com/johnfelipe/HarmonyLab/model"
	"github.com/johnfelipe/HarmonyLab/noteset"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveCfg config.Config

// practice sessions are in-memory only; the engine persists nothing
type session struct {
	set *noteset.Set
	sig *key.Signature
}

var sessionsMu sync.Mutex
var sessions map[string]*session

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis API",
	Long:  `Serves the analysis API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// InitServe loads config and resets session state. Split out so e2e tests
// can drive the handlers without binding a port.
func InitServe() {
	serveCfg = config.MustLoad()
	sessions = make(map[string]*session)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	name := input.Key
	if name == "" {
		name = serveCfg.Key
	}
	sig, err := key.Named(name)
	if err != nil {
		writeError(w, 400, "Unknown key: "+name)
		return
	}

	json.NewEncoder(w).Encode(analysis.Analyze(input.Notes, sig, serveCfg))
}

func HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequestBody
	// body is optional; an empty one gets the configured default key
	json.NewDecoder(r.Body).Decode(&input)

	name := input.Key
	if name == "" {
		name = serveCfg.Key
	}
	sig, err := key.Named(name)
	if err != nil {
		writeError(w, 400, "Unknown key: "+name)
		return
	}

	id := uuid.New().String()
	sessionsMu.Lock()
	sessions[id] = &session{set: noteset.New(), sig: sig}
	sessionsMu.Unlock()

	json.NewEncoder(w).Encode(model.SessionResponse{Id: id, Key: sig.ShortName()})
}

func getSession(r *http.Request) *session {
	id := mux.Vars(r)["id"]
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	return sessions[id]
}

func HandleSessionNotes(w http.ResponseWriter, r *http.Request) {
	s := getSession(r)
	if s == nil {
		writeError(w, 404, "No such session")
		return
	}

	var input model.NoteCommandBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	// the set is single-writer per spec; HTTP callers share one writer lock
	sessionsMu.Lock()
	var changed bool
	switch noteset.Command(input.Command) {
	case noteset.On:
		changed = s.set.NoteOn(input.Note)
	case noteset.Off:
		changed = s.set.NoteOff(input.Note)
	default:
		sessionsMu.Unlock()
		writeError(w, 400, "Command must be on or off")
		return
	}
	sounding := s.set.Sorted()
	sessionsMu.Unlock()

	json.NewEncoder(w).Encode(model.NoteCommandResponse{Changed: changed, Sounding: sounding})
}

func HandleSessionAnalysis(w http.ResponseWriter, r *http.Request) {
	s := getSession(r)
	if s == nil {
		writeError(w, 404, "No such session")
		return
	}

	sessionsMu.Lock()
	notes := s.set.Sorted()
	sessionsMu.Unlock()

	json.NewEncoder(w).Encode(analysis.Analyze(notes, s.sig, serveCfg))
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	router.HandleFunc("/sessions", HandleCreateSession).Methods("POST")
	router.HandleFunc("/sessions/{id}/notes", HandleSessionNotes).Methods("POST")
	router.HandleFunc("/sessions/{id}/analysis", HandleSessionAnalysis).Methods("GET")
	return router
}

func serve() {
	InitServe()
	handler := cors.Default().Handler(NewRouter())
	fmt.Printf("serving on %v\n", serveCfg.Addr)
	log.Fatal(http.ListenAndServe(serveCfg.Addr, handler))
}
