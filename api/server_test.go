package api

import (
	"bytes"
	"encoding/json"
	"github.com/carlosgonzalezvergara/vendler/aktionsart"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/carlosgonzalezvergara/vendler/ls"
	"github.com/carlosgonzalezvergara/vendler/sessionstore"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newServer(t *testing.T) http.Handler {
	lsEngine, err := ls.NewEngine(lexicon.Default(), ls.GlossFunc(func(name string) string {
		if name == "abierto" {
			return "opened"
		}
		return name
	}))
	require.NoError(t, err)
	english, err := aktionsart.NewDefaultEngine(aktionsart.English)
	require.NoError(t, err)
	spanish, err := aktionsart.NewDefaultEngine(aktionsart.Spanish)
	require.NoError(t, err)

	srv, err := New(sessionstore.NewMemoryStore(), lsEngine, english, spanish)
	require.NoError(t, err)
	return srv.Handler([]string{"*"})
}

func call(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder, status int) SessionView {
	require.Equal(t, status, rec.Code, rec.Body.String())
	var v SessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder, status int) errorResponse {
	require.Equal(t, status, rec.Code, rec.Body.String())
	var e errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestLogicalStructureSession(t *testing.T) {
	h := newServer(t)

	v := decodeView(t, call(t, h, http.MethodPost, "/api/sessions", createRequest{Kind: "ls"}), http.StatusCreated)
	require.NotEmpty(t, v.Session)
	require.Equal(t, ls.NodeStart, v.Node)
	require.Equal(t, dialog.KindForm, v.Prompt.Kind)
	require.False(t, v.CanGoBack)
	path := "/api/sessions/" + v.Session

	answers := []dialog.Input{
		dialog.Form(map[string]string{ls.FieldAkt: "realización", ls.FieldClause: "Pedro abrió la puerta"}),
		dialog.Form(map[string]string{ls.FieldSubject: "Pedro", ls.FieldObject: "la puerta"}),
		dialog.No(),
		dialog.No(),
		dialog.Form(map[string]string{ls.FieldPredicate: "abrir", ls.FieldPredType: ls.PredVerb}),
		dialog.No(),
	}
	for _, in := range answers {
		v = decodeView(t, call(t, h, http.MethodPost, path+"/answer", in), http.StatusOK)
	}
	require.Equal(t, ls.NodeResult, v.Node)
	require.True(t, v.CanGoBack)
	require.False(t, v.Finished)
	require.Contains(t, v.Info, ls.InfoField{Label: "Sujeto", Value: "Pedro"})

	t.Run("Export before the end", func(t *testing.T) {
		decodeError(t, call(t, h, http.MethodGet, path+"/export/plain", nil), http.StatusConflict)
	})

	t.Run("Rejected answer", func(t *testing.T) {
		e := decodeError(t, call(t, h, http.MethodPost, path+"/answer", dialog.Text("quizá")), http.StatusUnprocessableEntity)
		require.NotEmpty(t, e.Warning)
		v := decodeView(t, call(t, h, http.MethodGet, path, nil), http.StatusOK)
		require.Equal(t, ls.NodeResult, v.Node)
	})

	v = decodeView(t, call(t, h, http.MethodPost, path+"/answer", dialog.No()), http.StatusOK)
	require.Equal(t, ls.NodeAskOperators, v.Node)
	v = decodeView(t, call(t, h, http.MethodPost, path+"/answer", dialog.No()), http.StatusOK)
	require.Equal(t, ls.NodeFinal, v.Node)
	require.True(t, v.Finished)
	require.Equal(t, "BECOME opened' (Pedro, la puerta)", v.Result)
	require.NotEmpty(t, v.LaTeX)

	decodeError(t, call(t, h, http.MethodPost, path+"/answer", dialog.Yes()), http.StatusConflict)

	t.Run("Export", func(t *testing.T) {
		rec := call(t, h, http.MethodGet, path+"/export/txt", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "BECOME opened' (Pedro, la puerta)\n", rec.Body.String())
		require.Contains(t, rec.Header().Get("Content-Disposition"), "estructura_logica.txt")

		rec = call(t, h, http.MethodGet, path+"/export/png", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "image/png", rec.Header().Get("Content-Type"))

		decodeError(t, call(t, h, http.MethodGet, path+"/export/bmp", nil), http.StatusBadRequest)
	})

	v = decodeView(t, call(t, h, http.MethodPost, path+"/back", nil), http.StatusOK)
	require.Equal(t, ls.NodeAskOperators, v.Node)
	require.False(t, v.Finished)

	v = decodeView(t, call(t, h, http.MethodPost, path+"/restart", nil), http.StatusOK)
	require.Equal(t, ls.NodeStart, v.Node)
	require.False(t, v.CanGoBack)

	rec := call(t, h, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	decodeError(t, call(t, h, http.MethodGet, path, nil), http.StatusNotFound)
}

func TestHandoff(t *testing.T) {
	h := newServer(t)

	v := decodeView(t, call(t, h, http.MethodPost, "/api/sessions", createRequest{Kind: "aktionsart", Lang: "es"}), http.StatusCreated)
	require.Equal(t, aktionsart.Spanish, v.Lang)
	require.Equal(t, aktionsart.NodeStart, v.Node)
	path := "/api/sessions/" + v.Session

	decodeError(t, call(t, h, http.MethodPost, path+"/handoff", nil), http.StatusConflict)
	decodeError(t, call(t, h, http.MethodGet, path+"/export/plain", nil), http.StatusBadRequest)

	answers := []dialog.Input{
		dialog.Text("Pedro corrió hasta su casa"),
		dialog.Decline(),
		dialog.No(),
		dialog.Yes(),
		dialog.Yes(),
		dialog.Yes(),
		dialog.Yes(),
		dialog.Yes(),
	}
	for _, in := range answers {
		v = decodeView(t, call(t, h, http.MethodPost, path+"/answer", in), http.StatusOK)
	}
	require.Equal(t, aktionsart.NodeResult, v.Node)
	require.True(t, v.Finished)
	require.NotNil(t, v.Handoff)
	require.Equal(t, "actividad", v.Handoff.Label)
	require.Equal(t, "actividad", v.Status.Result)

	child := decodeView(t, call(t, h, http.MethodPost, path+"/handoff", nil), http.StatusCreated)
	require.Equal(t, sessionstore.KindLS, child.Kind)
	require.Equal(t, v.Session, child.Parent)
	require.Equal(t, ls.NodeArguments, child.Node)
	require.Contains(t, child.Info, ls.InfoField{Label: "Cláusula", Value: "Pedro corrió hasta su casa"})
	require.Contains(t, child.Info, ls.InfoField{Label: "Aktionsart", Value: "ACTIVIDAD"})

	t.Run("English results are not handed off", func(t *testing.T) {
		v := decodeView(t, call(t, h, http.MethodPost, "/api/sessions", createRequest{Kind: "aktionsart", Lang: "en"}), http.StatusCreated)
		decodeError(t, call(t, h, http.MethodPost, "/api/sessions/"+v.Session+"/handoff", nil), http.StatusConflict)
	})
}

func TestBadRequests(t *testing.T) {
	h := newServer(t)

	decodeError(t, call(t, h, http.MethodPost, "/api/sessions", createRequest{Kind: "other"}), http.StatusBadRequest)
	decodeError(t, call(t, h, http.MethodPost, "/api/sessions", createRequest{Kind: "aktionsart", Lang: "fr"}), http.StatusBadRequest)
	decodeError(t, call(t, h, http.MethodGet, "/api/sessions/missing", nil), http.StatusNotFound)
	decodeError(t, call(t, h, http.MethodPost, "/api/sessions/missing/answer", dialog.Yes()), http.StatusNotFound)
	decodeError(t, call(t, h, http.MethodGet, "/api/nothing", nil), http.StatusNotFound)
}

func TestCredits(t *testing.T) {
	h := newServer(t)

	rec := call(t, h, http.MethodGet, "/api/credits?lang=en", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var credits Credits
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &credits))
	require.Equal(t, "Information and Credits", credits.Title)
	require.Len(t, credits.Bibliography, 3)

	rec = call(t, h, http.MethodGet, "/api/credits", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &credits))
	require.Equal(t, "Información y Créditos", credits.Title)

	decodeError(t, call(t, h, http.MethodGet, "/api/credits?lang=fr", nil), http.StatusBadRequest)
}
