package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/class-coins-api/internal/models"
)

func TestListClassesEmpty(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doRequest(r, http.MethodGet, "/api/classes", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateClassRequiresToken(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doRequest(r, http.MethodPost, "/api/classes", `{"name":"7B"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodPost, "/api/classes", `{"name":"7B"}`, "not.a-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]any
	require.NoError(t, decodeBody(w, &resp))
	assert.Equal(t, "invalid or expired token", resp["error"])
}

func TestCreateAndListClasses(t *testing.T) {
	r, _ := newTestAPI(t)
	tok := adminToken(t, r)

	w := doRequest(r, http.MethodPost, "/api/classes", `{"name":"7B"}`, tok)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Class
	require.NoError(t, decodeBody(w, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "7B", created.Name)

	w = doRequest(r, http.MethodPost, "/api/classes", `{"name":"8A"}`, tok)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodGet, "/api/classes", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var classes []models.Class
	require.NoError(t, decodeBody(w, &classes))
	require.Len(t, classes, 2)
	assert.Equal(t, "7B", classes[0].Name)
	assert.Equal(t, "8A", classes[1].Name)
}

func TestCreateClassRejectsBlankName(t *testing.T) {
	r, _ := newTestAPI(t)
	tok := adminToken(t, r)

	for _, body := range []string{`{}`, `{"name":""}`, `{"name":"   "}`} {
		w := doRequest(r, http.MethodPost, "/api/classes", body, tok)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)

		var resp map[string]any
		require.NoError(t, decodeBody(w, &resp))
		assert.Equal(t, "class name is required", resp["error"])
	}
}

func TestDeleteClassCascades(t *testing.T) {
	r, _ := newTestAPI(t)
	tok := adminToken(t, r)

	w := doRequest(r, http.MethodPost, "/api/classes", `{"name":"7B"}`, tok)
	require.Equal(t, http.StatusCreated, w.Code)
	var class models.Class
	require.NoError(t, decodeBody(w, &class))

	w = doRequest(r, http.MethodPost, "/api/students",
		`{"name":"Ada","classId":"`+class.ID+`"}`, tok)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/classes/"+class.ID, "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/classes", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/classes/"+class.ID+"/students", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDeleteClassNotFound(t *testing.T) {
	r, _ := newTestAPI(t)
	tok := adminToken(t, r)

	w := doRequest(r, http.MethodDelete, "/api/classes/missing", "", tok)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]any
	require.NoError(t, decodeBody(w, &resp))
	assert.Equal(t, "class not found", resp["error"])
}
