package guardian

import (
	"encoding/json"
	"testing"
	"time"
)

const searchResponseFixture = `{
	"response": {
		"status": "ok",
		"userTier": "developer",
		"total": 2,
		"startIndex": 1,
		"pageSize": 10,
		"currentPage": 1,
		"pages": 1,
		"orderBy": "newest",
		"results": [
			{
				"id": "football/live/2022/jan/01/final-liveblog",
				"type": "liveblog",
				"sectionId": "football",
				"sectionName": "Football",
				"webPublicationDate": "2022-01-01T17:30:00Z",
				"webTitle": "Final - live!",
				"webUrl": "https://www.theguardian.com/football/live/2022/jan/01/final-liveblog",
				"apiUrl": "https://content.guardianapis.com/football/live/2022/jan/01/final-liveblog",
				"isHosted": false,
				"pillarId": "pillar/sport",
				"pillarName": "Sport",
				"fields": {
					"headline": "Final - live!",
					"byline": "A Reporter",
					"shortUrl": "https://gu.com/p/abcde",
					"lastModified": "2022-01-01T19:00:00Z"
				},
				"tags": [
					{
						"id": "football/football",
						"type": "keyword",
						"webTitle": "Football",
						"webUrl": "https://www.theguardian.com/football/football",
						"apiUrl": "https://content.guardianapis.com/football/football"
					}
				],
				"section": {
					"id": "football",
					"webTitle": "Football",
					"editions": [
						{"id": "football", "webTitle": "Football", "code": "default"},
						{"id": "au/football", "webTitle": "Football", "code": "au"}
					]
				},
				"blocks": {
					"body": [
						{"id":"b1","bodyHtml":"<p>Kick off.</p>",
						 "elements":[{"type":"text","textTypeData":{"html":"<p>Kick off.</p>"}}]}
					]
				}
			},
			{
				"id": "film/2022/jan/01/some-review",
				"type": "article",
				"sectionId": "film",
				"sectionName": "Film",
				"webTitle": "Some review",
				"isHosted": false,
				"brandNewUpstreamField": {"ignored": true}
			}
		]
	}
}`

func TestSearchResponse_Decode(t *testing.T) {
	var envelope responseEnvelope
	if err := json.Unmarshal([]byte(searchResponseFixture), &envelope); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if envelope.Message != nil {
		t.Errorf("Message = %v, want nil", envelope.Message)
	}
	resp := envelope.Response
	if resp == nil {
		t.Fatal("Response = nil")
	}

	if resp.Status == nil || *resp.Status != "ok" {
		t.Errorf("Status = %v, want ok", resp.Status)
	}
	if resp.Total == nil || *resp.Total != 2 {
		t.Errorf("Total = %v, want 2", resp.Total)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("Results = %d, want 2", len(resp.Results))
	}

	liveblog := resp.Results[0]
	if liveblog.Type != "liveblog" {
		t.Errorf("Type = %q", liveblog.Type)
	}
	wantDate := time.Date(2022, 1, 1, 17, 30, 0, 0, time.UTC)
	if liveblog.WebPublicationDate == nil || !liveblog.WebPublicationDate.Equal(wantDate) {
		t.Errorf("WebPublicationDate = %v, want %v", liveblog.WebPublicationDate, wantDate)
	}
	if liveblog.Fields == nil || liveblog.Fields.Byline == nil || *liveblog.Fields.Byline != "A Reporter" {
		t.Errorf("Fields.Byline = %+v", liveblog.Fields)
	}
	if len(liveblog.Tags) != 1 || liveblog.Tags[0].ID != "football/football" {
		t.Errorf("Tags = %+v", liveblog.Tags)
	}
	if liveblog.Section == nil || len(liveblog.Section.Editions) != 2 {
		t.Fatalf("Section = %+v, want 2 editions", liveblog.Section)
	}
	if liveblog.Section.Editions[1].Code != "au" {
		t.Errorf("edition code = %q, want au", liveblog.Section.Editions[1].Code)
	}
	if liveblog.Blocks == nil || len(liveblog.Blocks.Body) != 1 {
		t.Fatalf("Blocks = %+v, want 1 body block", liveblog.Blocks)
	}

	// The second result carries none of the optional bags and an unknown
	// upstream field; both must decode cleanly.
	article := resp.Results[1]
	if article.Fields != nil || article.Tags != nil || article.Section != nil || article.Blocks != nil {
		t.Errorf("optional bags = %+v, want all absent", article)
	}
	if article.WebPublicationDate != nil {
		t.Errorf("WebPublicationDate = %v, want nil", article.WebPublicationDate)
	}
}

func TestSearchResponse_SingleItemContent(t *testing.T) {
	body := `{"response":{"status":"ok","content":{"id":"books/2022/jan/01/highlights","type":"article","webTitle":"Highlights"}}}`

	var envelope responseEnvelope
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	resp := envelope.Response
	if resp == nil || resp.Content == nil {
		t.Fatal("Content = nil")
	}
	if resp.Content.ID != "books/2022/jan/01/highlights" {
		t.Errorf("Content.ID = %q", resp.Content.ID)
	}
	if resp.Results != nil {
		t.Errorf("Results = %+v, want nil", resp.Results)
	}
}
