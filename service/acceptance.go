package service

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance runs over the embedded seeds: 12 applications, newest first.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("List views", func(a *biff.A) {
		resp := apiRequest("GET", "/views").Do()
		Save(resp, "List views", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		views := resp.BodyJson().([]interface{})
		biff.AssertEqual(len(views), 7)
		first := views[0].(map[string]interface{})
		biff.AssertEqual(first["name"], "applications")
		biff.AssertEqual(first["total"], json.Number("12"))
		biff.AssertEqual(first["actions"], []interface{}{"approve", "reject", "request_info"})
	})

	a.Alternative("Get view", func(a *biff.A) {
		resp := apiRequest("GET", "/views/applications").Do()
		Save(resp, "Get view", `
			A view starts on page 1, without search text and every categorical
			filter set to "all".
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		body := resp.BodyJsonMap()
		biff.AssertEqualJson(body["page"], JSON{
			"current_page": 1,
			"page_size":    10,
			"total_pages":  2,
			"total":        12,
			"start_index":  0,
			"end_index":    10,
			"page_numbers": []int{1, 2},
		})
		biff.AssertEqualJson(body["filter"], JSON{
			"search_text": "",
			"categorical": JSON{"status": "all", "type": "all", "district": "all"},
		})
		biff.AssertEqual(body["from"], json.Number("1"))
		biff.AssertEqual(body["to"], json.Number("10"))
		biff.AssertEqual(body["total"], json.Number("12"))
		records := body["records"].([]interface{})
		biff.AssertEqual(len(records), 10)
		biff.AssertEqual(records[0].(map[string]interface{})["id"], "APP001")
		biff.AssertEqual(body["selected"], []interface{}{})
	})

	a.Alternative("Filter by status", func(a *biff.A) {
		resp := apiRequest("POST", "/views/applications:filter").
			WithBodyJson(JSON{"field": "status", "value": "pending"}).Do()
		Save(resp, "Filter", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		body := resp.BodyJsonMap()
		page := body["page"].(map[string]interface{})
		biff.AssertEqual(page["total"], json.Number("5"))
		biff.AssertEqual(page["total_pages"], json.Number("1"))
		biff.AssertEqual(page["start_index"], json.Number("0"))
		biff.AssertEqual(page["end_index"], json.Number("5"))
		for _, r := range body["records"].([]interface{}) {
			biff.AssertEqual(r.(map[string]interface{})["status"], "pending")
		}

		a.Alternative("Reset filters", func(a *biff.A) {
			resp := apiRequest("POST", "/views/applications:resetFilters").Do()
			Save(resp, "Reset filters", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			page := resp.BodyJsonMap()["page"].(map[string]interface{})
			biff.AssertEqual(page["total"], json.Number("12"))
		})

		a.Alternative("Unknown value matches nothing", func(a *biff.A) {
			resp := apiRequest("POST", "/views/applications:filter").
				WithBodyJson(JSON{"field": "status", "value": "archived"}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyJsonMap()["records"], []interface{}{})
		})
	})

	a.Alternative("Search", func(a *biff.A) {
		resp := apiRequest("POST", "/views/applications:search").
			WithBodyJson(JSON{"text": "JOHN"}).Do()
		Save(resp, "Search", `
			Search is case insensitive and looks into the searchable fields of
			the view.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(recordIDs(resp), []string{"APP001", "APP003"})
	})

	a.Alternative("Go to page 2", func(a *biff.A) {
		resp := apiRequest("POST", "/views/applications:gotoPage").
			WithBodyJson(JSON{"page": 2}).Do()
		Save(resp, "Go to page", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(recordIDs(resp), []string{"APP011", "APP012"})
		body := resp.BodyJsonMap()
		biff.AssertEqual(body["from"], json.Number("11"))
		biff.AssertEqual(body["to"], json.Number("12"))

		a.Alternative("Next page stays on the last one", func(a *biff.A) {
			resp := apiRequest("POST", "/views/applications:nextPage").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			page := resp.BodyJsonMap()["page"].(map[string]interface{})
			biff.AssertEqual(page["current_page"], json.Number("2"))
		})

		a.Alternative("Previous page", func(a *biff.A) {
			resp := apiRequest("POST", "/views/applications:previousPage").Do()
			Save(resp, "Previous page", ``)
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			page := resp.BodyJsonMap()["page"].(map[string]interface{})
			biff.AssertEqual(page["current_page"], json.Number("1"))
		})
	})

	a.Alternative("Select two records", func(a *biff.A) {
		apiRequest("POST", "/views/applications:toggle").
			WithBodyJson(JSON{"id": "APP001", "checked": true}).Do()
		resp := apiRequest("POST", "/views/applications:toggle").
			WithBodyJson(JSON{"id": "APP005", "checked": true}).Do()
		Save(resp, "Toggle", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.BodyJsonMap()["selected"], []interface{}{"APP001", "APP005"})

		a.Alternative("Editing the search clears the selection", func(a *biff.A) {
			resp := apiRequest("POST", "/views/applications:search").
				WithBodyJson(JSON{"text": "a"}).Do()

			body := resp.BodyJsonMap()
			biff.AssertEqual(body["selected"], []interface{}{})
			biff.AssertEqual(body["page"].(map[string]interface{})["current_page"], json.Number("1"))
		})

		a.Alternative("Dispatch approve", func(a *biff.A) {
			resp := apiRequest("POST", "/views/applications:dispatch").
				WithBodyJson(JSON{"action": "approve"}).Do()
			Save(resp, "Dispatch", `
				Applies a bulk action to the selected records. The selection is
				cleared and an entry is added to the audit log.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			body := resp.BodyJsonMap()
			biff.AssertEqual(body["action"], "approve")
			biff.AssertEqual(body["ids"], []interface{}{"APP001", "APP005"})
			biff.AssertEqual(body["view"].(map[string]interface{})["selected"], []interface{}{})

			a.Alternative("Record is updated", func(a *biff.A) {
				resp := apiRequest("GET", "/views/applications/records/APP005").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(resp.BodyJsonMap()["status"], "approved")
			})

			a.Alternative("Audit log has the entry", func(a *biff.A) {
				resp := apiRequest("GET", "/views/audit").Do()
				body := resp.BodyJsonMap()
				biff.AssertEqual(body["total"], json.Number("8"))
				newest := body["records"].([]interface{})[0].(map[string]interface{})
				biff.AssertEqual(newest["action"], "APPLICATION_APPROVED")
				biff.AssertEqual(newest["resource"], "Application APP001, APP005")
			})
		})

		a.Alternative("Dispatch unknown action", func(a *biff.A) {
			resp := apiRequest("POST", "/views/applications:dispatch").
				WithBodyJson(JSON{"action": "delete"}).Do()
			Save(resp, "Dispatch - unknown action", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})
	})

	a.Alternative("Toggle a record of another page", func(a *biff.A) {
		resp := apiRequest("POST", "/views/applications:toggle").
			WithBodyJson(JSON{"id": "APP011", "checked": true}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.BodyJsonMap()["selected"], []interface{}{})

		resp = apiRequest("POST", "/views/applications:dispatch").
			WithBodyJson(JSON{"action": "approve"}).Do()
		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Select all", func(a *biff.A) {
		resp := apiRequest("POST", "/views/applications:selectAll").
			WithBodyJson(JSON{"checked": true}).Do()
		Save(resp, "Select all", `
			Selects every record of the visible page.
		`)

		body := resp.BodyJsonMap()
		biff.AssertEqual(len(body["selected"].([]interface{})), 10)
		biff.AssertEqual(body["all_selected"], true)

		a.Alternative("Unselect all", func(a *biff.A) {
			resp := apiRequest("POST", "/views/applications:selectAll").
				WithBodyJson(JSON{"checked": false}).Do()
			body := resp.BodyJsonMap()
			biff.AssertEqual(body["selected"], []interface{}{})
			biff.AssertEqual(body["all_selected"], false)
		})
	})

	a.Alternative("Dispatch without selection", func(a *biff.A) {
		resp := apiRequest("POST", "/views/applications:dispatch").
			WithBodyJson(JSON{"action": "approve"}).Do()
		Save(resp, "Dispatch - empty selection", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "empty selection",
				"description": "select at least one record",
			},
		})
	})

	a.Alternative("Export", func(a *biff.A) {
		apiRequest("POST", "/views/applications:filter").
			WithBodyJson(JSON{"field": "status", "value": "approved"}).Do()

		resp := apiRequest("POST", "/views/applications:export").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.Header.Get("Content-Type"), "text/csv; charset=utf-8")
		lines := strings.Split(strings.TrimSpace(resp.BodyString()), "\n")
		biff.AssertEqual(lines, []string{
			"id,applicantName,nic,type,district,status,submittedDate,aiScore,priority",
			"APP002,Jane Smith,987654321V,Title Transfer,Kandy,approved,2024-01-14,92,medium",
			"APP007,Kamala Fernando,741852963V,Subdivision,Kandy,approved,2024-01-09,95,low",
			"APP011,Dilani Wickramasinghe,486159357V,Title Transfer,Matara,approved,2024-01-05,90,medium",
		})
	})

	a.Alternative("Summary", func(a *biff.A) {
		resp := apiRequest("POST", "/views/applications:summary").
			WithBodyJson(JSON{"field": "status"}).Do()
		Save(resp, "Summary", `
			Counts the records of the view by the value of a field.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"pending":      5,
			"approved":     3,
			"rejected":     2,
			"under_review": 2,
		})
	})

	a.Alternative("Counters", func(a *biff.A) {
		resp := apiRequest("POST", "/views/notifications:counters").Do()
		Save(resp, "Counters", `
			Evaluates the dashboard counters configured for the view over all
			its records, whatever the current filters.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"active":        4,
			"high_priority": 2,
		})

		resp = apiRequest("POST", "/views/audit:counters").Do()
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"security_events": 2,
			"failed_actions":  3,
			"active_users":    2,
		})
	})

	a.Alternative("Count", func(a *biff.A) {
		resp := apiRequest("POST", "/views/applications:count").
			WithBodyJson(JSON{
				"name": "kandy_pending_or_approved",
				"where": []JSON{
					{"field": "status", "in": []string{"pending", "approved"}},
					{"field": "district", "in": []string{"Kandy"}},
				},
			}).Do()
		Save(resp, "Count", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"name":  "kandy_pending_or_approved",
			"value": 2,
		})

		a.Alternative("Invalid condition", func(a *biff.A) {
			resp := apiRequest("POST", "/views/applications:count").
				WithBodyJson(JSON{"where": []JSON{{"field": "status"}}}).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})
	})

	a.Alternative("Get record", func(a *biff.A) {
		resp := apiRequest("GET", "/views/applications/records/APP002").Do()
		Save(resp, "Get record", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"id":            "APP002",
			"applicantName": "Jane Smith",
			"nic":           "987654321V",
			"type":          "Title Transfer",
			"district":      "Kandy",
			"status":        "approved",
			"submittedDate": "2024-01-14",
			"aiScore":       92,
			"priority":      "medium",
		})
	})

	a.Alternative("Get record - not found", func(a *biff.A) {
		resp := apiRequest("GET", "/views/applications/records/APP999").Do()
		Save(resp, "Get record - not found", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("Get view - not found", func(a *biff.A) {
		resp := apiRequest("GET", "/views/parcels").Do()
		Save(resp, "Get view - not found", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("Users view uses numeric ids", func(a *biff.A) {
		resp := apiRequest("POST", "/views/users:toggle").
			WithBodyJson(JSON{"id": "3", "checked": true}).Do()
		biff.AssertEqual(resp.StatusCode, http.StatusOK)

		resp = apiRequest("POST", "/views/users:dispatch").
			WithBodyJson(JSON{"action": "activate"}).Do()
		biff.AssertEqual(resp.StatusCode, http.StatusOK)

		resp = apiRequest("GET", "/views/users/records/3").Do()
		biff.AssertEqual(resp.BodyJsonMap()["status"], "Active")
	})
}

func recordIDs(resp *apitest.Response) []string {
	ids := []string{}
	for _, r := range resp.BodyJsonMap()["records"].([]interface{}) {
		ids = append(ids, r.(map[string]interface{})["id"].(string))
	}
	return ids
}
