//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/johnfelipe/HarmonyLab/cmd"
	"github.com/johnfelipe/HarmonyLab/model"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	cmd.InitServe()
	os.Exit(m.Run())
}

func jsonBody(v any) io.Reader {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestAnalyzeTonicTriadE2E(t *testing.T) {
	body := jsonBody(model.AnalyzeRequestBody{Key: "C", Notes: model.Notes{60, 64, 67}})
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	w := httptest.NewRecorder()
	cmd.HandleAnalyze(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var analysis model.Analysis
	err := json.Unmarshal(respBody, &analysis)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal("C", analysis.Key)
	assert.NotNil(analysis.Chord)
	assert.Equal("I", analysis.Chord.Numeral)
	assert.Equal("", analysis.Chord.Figure)
}

func TestAnalyzeUnknownKeyE2E(t *testing.T) {
	body := jsonBody(model.AnalyzeRequestBody{Key: "H", Notes: model.Notes{60}})
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	w := httptest.NewRecorder()
	cmd.HandleAnalyze(w, req)

	assert.Equal(t, 400, w.Result().StatusCode)
}

func TestSessionFlowE2E(t *testing.T) {
	assert := assert.New(t)

	// create a session in G major
	w := httptest.NewRecorder()
	cmd.HandleCreateSession(w, httptest.NewRequest(http.MethodPost, "/sessions",
		jsonBody(model.AnalyzeRequestBody{Key: "G"})))
	assert.Equal(200, w.Result().StatusCode)

	var created model.SessionResponse
	respBody, _ := io.ReadAll(w.Result().Body)
	if err := json.Unmarshal(respBody, &created); err != nil {
		panic(err.Error())
	}
	assert.Equal("G", created.Key)
	assert.NotEmpty(created.Id)

	router := cmd.NewRouter()

	// press a D major triad, the dominant of G
	for _, note := range []uint8{62, 66, 69} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sessions/"+created.Id+"/notes",
			jsonBody(model.NoteCommandBody{Command: "on", Note: note}))
		router.ServeHTTP(w, req)
		assert.Equal(200, w.Result().StatusCode)

		var cmdResp model.NoteCommandResponse
		respBody, _ := io.ReadAll(w.Result().Body)
		if err := json.Unmarshal(respBody, &cmdResp); err != nil {
			panic(err.Error())
		}
		assert.True(cmdResp.Changed)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sessions/"+created.Id+"/analysis", nil))
	assert.Equal(200, w.Result().StatusCode)

	var analysis model.Analysis
	respBody, _ = io.ReadAll(w.Result().Body)
	if err := json.Unmarshal(respBody, &analysis); err != nil {
		panic(err.Error())
	}
	assert.NotNil(analysis.Chord)
	assert.Equal("V", analysis.Chord.Numeral)

	// releasing a note changes the sounding set
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sessions/"+created.Id+"/notes",
		jsonBody(model.NoteCommandBody{Command: "off", Note: 62})))
	var cmdResp model.NoteCommandResponse
	respBody, _ = io.ReadAll(w.Result().Body)
	if err := json.Unmarshal(respBody, &cmdResp); err != nil {
		panic(err.Error())
	}
	assert.True(cmdResp.Changed)
	assert.Equal(model.Notes{66, 69}, cmdResp.Sounding)
}

func TestSessionUnknownIdE2E(t *testing.T) {
	router := cmd.NewRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sessions/nope/analysis", nil))
	assert.Equal(t, 404, w.Result().StatusCode)
}
