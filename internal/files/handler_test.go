package files_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"studio-backend/internal/bootstrap"
	sharedauth "studio-backend/internal/shared/auth"
	"studio-backend/internal/shared/config"
)

func buildRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		Env:             "dev",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, authorize func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	authorize(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func asGuest(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}

func decode(t *testing.T, resp *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// createFileFixture walks team -> project -> file through the API and
// returns the new file's id.
func createFileFixture(t *testing.T, router *gin.Engine, authorize func(*http.Request)) string {
	t.Helper()

	resp := doJSON(t, router, http.MethodPost, "/api/v1/teams", gin.H{"name": "QA"}, authorize)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create team: expected 201, got %d (%s)", resp.Code, resp.Body.String())
	}
	var teamBody struct {
		Team struct {
			ID string `json:"id"`
		} `json:"team"`
	}
	decode(t, resp, &teamBody)

	resp = doJSON(t, router, http.MethodPost, "/api/v1/projects", gin.H{"name": "Checkout", "teamId": teamBody.Team.ID}, authorize)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create project: expected 201, got %d (%s)", resp.Code, resp.Body.String())
	}
	var projectBody struct {
		Project struct {
			ID string `json:"id"`
		} `json:"project"`
	}
	decode(t, resp, &projectBody)

	resp = doJSON(t, router, http.MethodPost, "/api/v1/files", gin.H{"projectId": projectBody.Project.ID, "name": "Payment Screen", "template": "blank"}, authorize)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create file: expected 201, got %d (%s)", resp.Code, resp.Body.String())
	}
	var fileBody struct {
		File struct {
			ID       string `json:"id"`
			Revision int64  `json:"revision"`
		} `json:"file"`
	}
	decode(t, resp, &fileBody)
	if fileBody.File.Revision != 1 {
		t.Fatalf("expected new file at revision 1, got %d", fileBody.File.Revision)
	}
	return fileBody.File.ID
}

func TestFileUpdateHappyPath(t *testing.T) {
	router := buildRouter(t)
	fileID := createFileFixture(t, router, asGuest)

	resp := doJSON(t, router, http.MethodPut, "/api/v1/files/"+fileID, gin.H{
		"schema_json":       gin.H{"screen": gin.H{"type": "ScreenRoot"}},
		"expected_revision": 1,
	}, asGuest)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}
	var updated struct {
		Revision int64 `json:"revision"`
	}
	decode(t, resp, &updated)
	if updated.Revision != 2 {
		t.Fatalf("expected revision 2, got %d", updated.Revision)
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/files/"+fileID, nil, asGuest)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var snapshot struct {
		Revision   int64           `json:"revision"`
		SchemaJSON json.RawMessage `json:"schema_json"`
	}
	decode(t, resp, &snapshot)
	if snapshot.Revision != 2 {
		t.Fatalf("expected stored revision 2, got %d", snapshot.Revision)
	}
	if !bytes.Contains(snapshot.SchemaJSON, []byte("ScreenRoot")) {
		t.Fatalf("expected stored schema to contain the update, got %s", snapshot.SchemaJSON)
	}
}

func TestFileUpdateStaleRevisionGets409(t *testing.T) {
	router := buildRouter(t)
	fileID := createFileFixture(t, router, asGuest)

	resp := doJSON(t, router, http.MethodPut, "/api/v1/files/"+fileID, gin.H{
		"schema_json":       gin.H{"winner": true},
		"expected_revision": 1,
	}, asGuest)
	if resp.Code != http.StatusOK {
		t.Fatalf("first update: expected 200, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodPut, "/api/v1/files/"+fileID, gin.H{
		"schema_json":       gin.H{"loser": true},
		"expected_revision": 1,
	}, asGuest)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%s)", resp.Code, resp.Body.String())
	}

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				CurrentRevision   int64           `json:"current_revision"`
				CurrentSchemaJSON json.RawMessage `json:"current_schema_json"`
			} `json:"details"`
		} `json:"error"`
	}
	decode(t, resp, &body)
	if body.Error.Code != "revision_conflict" {
		t.Fatalf("expected revision_conflict code, got %s", body.Error.Code)
	}
	if body.Error.Details.CurrentRevision != 2 {
		t.Fatalf("expected current_revision 2, got %d", body.Error.Details.CurrentRevision)
	}
	if !bytes.Contains(body.Error.Details.CurrentSchemaJSON, []byte("winner")) {
		t.Fatalf("expected conflict to carry the winning schema, got %s", body.Error.Details.CurrentSchemaJSON)
	}
}

func TestFileUpdateUnknownIDGets404(t *testing.T) {
	router := buildRouter(t)

	resp := doJSON(t, router, http.MethodPut, "/api/v1/files/33333333-3333-3333-3333-333333333333", gin.H{
		"schema_json":       gin.H{"a": 1},
		"expected_revision": 1,
	}, asGuest)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (%s)", resp.Code, resp.Body.String())
	}
}

func TestFileUpdateRejectsBadExpectedRevision(t *testing.T) {
	router := buildRouter(t)
	fileID := createFileFixture(t, router, asGuest)

	for _, revision := range []int64{0, -1} {
		resp := doJSON(t, router, http.MethodPut, "/api/v1/files/"+fileID, gin.H{
			"schema_json":       gin.H{"a": 1},
			"expected_revision": revision,
		}, asGuest)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for expected_revision=%d, got %d", revision, resp.Code)
		}
	}
}

func TestFileUpdateRecordsWriterFromToken(t *testing.T) {
	router := buildRouter(t)

	token, err := sharedauth.SignJWT(sharedauth.Claims{
		Sub:   "google:123",
		Email: "alice@example.com",
		Name:  "Alice",
	})
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	asAlice := func(req *http.Request) {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	fileID := createFileFixture(t, router, asAlice)

	resp := doJSON(t, router, http.MethodPut, "/api/v1/files/"+fileID, gin.H{
		"schema_json":       gin.H{"a": 1},
		"expected_revision": 1,
	}, asAlice)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}
	var updated struct {
		UpdatedBy *string `json:"updated_by"`
	}
	decode(t, resp, &updated)
	if updated.UpdatedBy == nil || *updated.UpdatedBy != "Alice" {
		t.Fatalf("expected updated_by Alice, got %v", updated.UpdatedBy)
	}
}

func TestFileListReturnsProjectFiles(t *testing.T) {
	router := buildRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/teams", gin.H{"name": "Listing"}, asGuest)
	var teamBody struct {
		Team struct {
			ID string `json:"id"`
		} `json:"team"`
	}
	decode(t, resp, &teamBody)

	resp = doJSON(t, router, http.MethodPost, "/api/v1/projects", gin.H{"name": "Catalog", "teamId": teamBody.Team.ID}, asGuest)
	var projectBody struct {
		Project struct {
			ID string `json:"id"`
		} `json:"project"`
	}
	decode(t, resp, &projectBody)

	for _, name := range []string{"Home", "Search"} {
		resp = doJSON(t, router, http.MethodPost, "/api/v1/files", gin.H{"projectId": projectBody.Project.ID, "name": name, "template": "blank"}, asGuest)
		if resp.Code != http.StatusCreated {
			t.Fatalf("create file %s: got %d", name, resp.Code)
		}
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/files?projectId="+projectBody.Project.ID, nil, asGuest)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var list struct {
		Items []struct {
			Name     string `json:"name"`
			Revision int64  `json:"revision"`
		} `json:"items"`
	}
	decode(t, resp, &list)
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 files, got %d", len(list.Items))
	}
	for _, item := range list.Items {
		if item.Revision != 1 {
			t.Fatalf("expected listed files at revision 1, got %d", item.Revision)
		}
	}
}
