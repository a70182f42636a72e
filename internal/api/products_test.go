package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProducts_List(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Products []productView `json:"products"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Products, 1)
	assert.Equal(t, "cinematic-hoodie", resp.Products[0].Handle)
	assert.Equal(t, []string{"S", "M"}, resp.Products[0].Sizes)
	assert.Equal(t, []string{"Red", "Blue"}, resp.Products[0].Colors)
}

func TestProducts_Detail(t *testing.T) {
	router, _, _ := newTestRouter(t)

	t.Run("Found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products/cinematic-hoodie", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var view productView
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
		assert.Equal(t, "Cinematic Hoodie", view.Title)
		assert.Len(t, view.Variants, 4)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products/ghost", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProducts_Resolve(t *testing.T) {
	router, _, _ := newTestRouter(t)

	resolve := func(t *testing.T, body string) (int, resolveResponse) {
		t.Helper()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/products/cinematic-hoodie/resolve", strings.NewReader(body))
		router.ServeHTTP(rec, req)

		var resp resolveResponse
		if rec.Code == http.StatusOK {
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		}
		return rec.Code, resp
	}

	t.Run("FullSelection", func(t *testing.T) {
		code, resp := resolve(t, `{"selections": {"Size": "M", "Color": "Blue"}}`)
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, resp.Resolved)
		assert.Equal(t, "v-m-blue", resp.Variant.ID)
		assert.InDelta(t, 50, resp.Price.Amount, 1e-9)
	})

	t.Run("PartialSelectionIsUnresolved", func(t *testing.T) {
		code, resp := resolve(t, `{"selections": {"Size": "M"}}`)
		assert.Equal(t, http.StatusOK, code)
		assert.False(t, resp.Resolved)
		assert.Nil(t, resp.Variant)
	})

	t.Run("AvailabilityGreysOutSoldOut", func(t *testing.T) {
		// With Size S selected, Red leads only to the sold-out variant.
		code, resp := resolve(t, `{"selections": {"Size": "S"}}`)
		assert.Equal(t, http.StatusOK, code)
		assert.False(t, resp.Availability["Color"]["Red"])
		assert.True(t, resp.Availability["Color"]["Blue"])
	})

	t.Run("MalformedBody", func(t *testing.T) {
		code, _ := resolve(t, `{`)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}
