package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/trovestudio/ffetrack/internal/handlers"
	"github.com/trovestudio/ffetrack/internal/models"
	"github.com/trovestudio/ffetrack/tests/helpers"
	"gorm.io/gorm"
)

// newTestApp wires the API routes against a fresh in-memory database,
// mirroring the route table in cmd/server.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := helpers.NewTestDB(t)

	app := fiber.New()
	api := app.Group("/api")

	projectHandler := &handlers.ProjectHandler{DB: db}
	roomHandler := &handlers.RoomHandler{DB: db}
	structureHandler := &handlers.StructureHandler{DB: db}
	itemHandler := &handlers.ItemHandler{DB: db}
	transferHandler := &handlers.TransferHandler{DB: db}
	vocabHandler := &handlers.VocabHandler{}

	api.Get("/projects", projectHandler.ListProjects)
	api.Get("/projects/:id", projectHandler.GetProject)
	api.Post("/projects", projectHandler.CreateProject)
	api.Put("/projects/:id", projectHandler.UpdateProject)
	api.Delete("/projects/:id", projectHandler.DeleteProject)
	api.Get("/rooms/available", vocabHandler.AvailableRooms)
	api.Get("/rooms/:id", roomHandler.GetRoom)
	api.Post("/rooms", roomHandler.CreateRoom)
	api.Delete("/rooms/:id", roomHandler.DeleteRoom)
	api.Get("/categories/available", structureHandler.AvailableCategories)
	api.Post("/categories", structureHandler.CreateCategory)
	api.Post("/categories/comprehensive", structureHandler.CreateComprehensiveCategory)
	api.Post("/subcategories", structureHandler.CreateSubcategory)
	api.Get("/items/:id", itemHandler.GetItem)
	api.Post("/items", itemHandler.CreateItem)
	api.Put("/items/:id", itemHandler.UpdateItem)
	api.Delete("/items/:id", itemHandler.DeleteItem)
	api.Post("/transfer", transferHandler.Transfer)
	api.Get("/statuses-enhanced", vocabHandler.Statuses)
	api.Get("/carrier-options", vocabHandler.Carriers)

	return app, db
}

func request(t *testing.T, app *fiber.App, method, path string, payload interface{}) *http.Response {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal payload: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}

func TestProjectRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, "POST", "/api/projects", map[string]interface{}{
		"name":         "Lakeside House",
		"project_type": "residential",
		"client_info":  map[string]interface{}{"client": "The Larsens"},
	})
	helpers.AssertStatus(t, resp, 201)

	var created models.Project
	helpers.ParseJSON(t, resp, &created)
	if created.ProjectID == "" || created.Name != "Lakeside House" {
		t.Fatalf("Unexpected project payload: %+v", created)
	}

	resp = request(t, app, "GET", "/api/projects/"+created.ProjectID, nil)
	helpers.AssertStatus(t, resp, 200)

	var fetched models.Project
	helpers.ParseJSON(t, resp, &fetched)
	if fetched.Rooms == nil {
		t.Error("Expected rooms array in project tree, got null")
	}
}

func TestCreateWalkthroughRoomEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	projectID := helpers.CreateTestProject(t, db, "Lakeside House")

	resp := request(t, app, "POST", "/api/rooms", map[string]interface{}{
		"project_id": projectID,
		"name":       "Kitchen",
		"sheet_type": "walkthrough",
	})
	helpers.AssertStatus(t, resp, 201)

	var room models.Room
	helpers.ParseJSON(t, resp, &room)
	if len(room.Categories) == 0 {
		t.Error("Expected populated walkthrough room")
	}
}

func TestCreateRoomBadSheetType(t *testing.T) {
	app, db := newTestApp(t)
	projectID := helpers.CreateTestProject(t, db, "Lakeside House")

	resp := request(t, app, "POST", "/api/rooms", map[string]interface{}{
		"project_id": projectID,
		"name":       "Kitchen",
		"sheet_type": "moodboard",
	})
	helpers.AssertStatus(t, resp, 422)

	var envelope map[string]interface{}
	helpers.ParseJSON(t, resp, &envelope)
	if envelope["ok"] != false {
		t.Error("Expected ok=false in error envelope")
	}
	if envelope["type"] != "policy" {
		t.Errorf("Expected type=policy, got %v", envelope["type"])
	}
}

func TestNotFoundEnvelope(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, "GET", "/api/projects/missing", nil)
	helpers.AssertStatus(t, resp, 404)

	var envelope map[string]interface{}
	helpers.ParseJSON(t, resp, &envelope)
	if envelope["ok"] != false || envelope["url"] == nil || envelope["timestamp"] == nil {
		t.Errorf("Malformed error envelope: %v", envelope)
	}
}

func TestTransferEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	projectID := helpers.CreateTestProject(t, db, "Lakeside House")
	roomID := helpers.CreateTestRoom(t, db, projectID, "Office", "walkthrough")
	subID := helpers.CreateTestStructure(t, db, roomID, "Seating", "Desk Chairs")
	itemID := helpers.CreateTestItem(t, db, subID, "Task Chair")

	resp := request(t, app, "POST", "/api/transfer", map[string]interface{}{
		"source_room_id": roomID,
		"item_ids":       []string{itemID},
		"sheet_type":     "checklist",
	})
	helpers.AssertStatus(t, resp, 200)

	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)
	if result["transferred_count"] != float64(1) {
		t.Errorf("Expected transferred_count 1, got %v", result["transferred_count"])
	}
	if result["room"] == nil {
		t.Error("Expected destination room in transfer result")
	}
}

func TestTransferEmptySelectionEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	projectID := helpers.CreateTestProject(t, db, "Lakeside House")
	roomID := helpers.CreateTestRoom(t, db, projectID, "Office", "walkthrough")

	resp := request(t, app, "POST", "/api/transfer", map[string]interface{}{
		"source_room_id": roomID,
		"item_ids":       []string{},
		"sheet_type":     "checklist",
	})
	helpers.AssertStatus(t, resp, 422)
}

func TestStatusVocabularyEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, "GET", "/api/statuses-enhanced", nil)
	helpers.AssertStatus(t, resp, 200)

	var statuses []map[string]string
	helpers.ParseJSON(t, resp, &statuses)

	found := false
	for _, s := range statuses {
		if s["status"] == "PICKED" {
			found = true
			if s["color"] != "#3B82F6" {
				t.Errorf("Expected PICKED color #3B82F6, got %s", s["color"])
			}
		}
	}
	if !found {
		t.Error("Expected PICKED in status vocabulary")
	}
}

func TestCarrierVocabularyEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, "GET", "/api/carrier-options", nil)
	helpers.AssertStatus(t, resp, 200)

	var carriers []map[string]string
	helpers.ParseJSON(t, resp, &carriers)
	if len(carriers) == 0 {
		t.Fatal("Expected carrier options")
	}
	if carriers[0]["name"] != "FedEx" || carriers[0]["color"] != "#4D148C" {
		t.Errorf("Unexpected first carrier: %v", carriers[0])
	}
}

func TestDeleteRoomEnvelope(t *testing.T) {
	app, db := newTestApp(t)
	projectID := helpers.CreateTestProject(t, db, "Lakeside House")
	roomID := helpers.CreateTestRoom(t, db, projectID, "Office", "checklist")
	subID := helpers.CreateTestStructure(t, db, roomID, "Seating", "Desk Chairs")
	helpers.CreateTestItem(t, db, subID, "Task Chair")

	resp := request(t, app, "DELETE", "/api/rooms/"+roomID, nil)
	helpers.AssertStatus(t, resp, 200)

	var envelope map[string]interface{}
	helpers.ParseJSON(t, resp, &envelope)
	if envelope["ok"] != true {
		t.Error("Expected ok=true in mutation envelope")
	}
	// room + category + subcategory + item
	if envelope["affectedRows"] != float64(4) {
		t.Errorf("Expected affectedRows 4, got %v", envelope["affectedRows"])
	}
}

func TestItemCrudEndpoints(t *testing.T) {
	app, db := newTestApp(t)
	projectID := helpers.CreateTestProject(t, db, "Lakeside House")
	roomID := helpers.CreateTestRoom(t, db, projectID, "Office", "checklist")
	subID := helpers.CreateTestStructure(t, db, roomID, "Seating", "Desk Chairs")

	resp := request(t, app, "POST", "/api/items", map[string]interface{}{
		"subcategory_id": subID,
		"name":           "Task Chair",
		"cost":           "$1,249.99",
		"quantity":       "2",
	})
	helpers.AssertStatus(t, resp, 201)

	var item models.Item
	helpers.ParseJSON(t, resp, &item)
	if item.Cost != 1249.99 || item.Quantity != 2 {
		t.Errorf("Flexible field parsing failed: cost=%v quantity=%d", item.Cost, item.Quantity)
	}

	resp = request(t, app, "PUT", "/api/items/"+item.ItemID, map[string]interface{}{
		"status": "ORDERED",
	})
	helpers.AssertStatus(t, resp, 200)

	var updated models.Item
	helpers.ParseJSON(t, resp, &updated)
	if updated.Status != "ORDERED" {
		t.Errorf("Expected status ORDERED, got %q", updated.Status)
	}

	resp = request(t, app, "DELETE", "/api/items/"+item.ItemID, nil)
	helpers.AssertStatus(t, resp, 200)

	resp = request(t, app, "GET", "/api/items/"+item.ItemID, nil)
	helpers.AssertStatus(t, resp, 404)
}
