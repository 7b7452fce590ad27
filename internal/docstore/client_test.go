package docstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/firmware_module_type/_all_docs", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"rows": []map[string]string{
				{"id": "_design/types"},
				{"id": "temp_sensor"},
				{"id": "pump"},
			},
		})
	})
	mux.HandleFunc("/firmware_module_type/temp_sensor", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"_id":         "temp_sensor",
			"_rev":        "1-abc",
			"class_name":  "TempSensor",
			"header_file": "temp_sensor.h",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAllDocIDsDecodesWithoutContentType(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/firmware_module/_all_docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(`{"rows": [{"id": "temp_sensor"}]}`))
	})
	mux.HandleFunc("/broken_store/_all_docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("not json"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := New(srv.URL)
	defer client.Close()

	ids, err := client.AllDocIDs(context.Background(), ModuleDB)
	require.NoError(t, err)
	assert.Equal(t, []string{"temp_sensor"}, ids)

	_, err = client.AllDocIDs(context.Background(), "broken_store")
	assert.Error(t, err)
}

func TestAllDocIDsSkipsReservedPrefix(t *testing.T) {
	srv := testServer(t)
	client := New(srv.URL)
	defer client.Close()

	ids, err := client.AllDocIDs(context.Background(), ModuleTypeDB)
	require.NoError(t, err)
	assert.Equal(t, []string{"temp_sensor", "pump"}, ids)
}

func TestGetDoc(t *testing.T) {
	srv := testServer(t)
	client := New(srv.URL)
	defer client.Close()

	doc, err := client.GetDoc(context.Background(), ModuleTypeDB, "temp_sensor")
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(doc, &decoded))
	assert.Equal(t, "TempSensor", decoded["class_name"])
	assert.NotContains(t, decoded, "_id")
	assert.NotContains(t, decoded, "_rev")
}

func TestGetDocServerError(t *testing.T) {
	srv := testServer(t)
	client := New(srv.URL)
	defer client.Close()

	_, err := client.GetDoc(context.Background(), ModuleTypeDB, "does_not_exist")
	assert.Error(t, err)
}
