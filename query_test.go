package guardian

import "testing"

func newTestQuery() *Query {
	return New(Config{APIKey: "test-api-key"}, nil).Query()
}

func TestClient_Defaults(t *testing.T) {
	c := New(Config{APIKey: "test-api-key"}, nil)

	if c.apiKey != "test-api-key" {
		t.Errorf("apiKey = %q, want %q", c.apiKey, "test-api-key")
	}
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}
	if got := c.Query().endpoint; got != EndpointContent {
		t.Errorf("default endpoint = %q, want %q", got, EndpointContent)
	}
}

func TestQuery_Endpoint(t *testing.T) {
	q := newTestQuery()

	for _, endpoint := range []Endpoint{EndpointSections, EndpointEditions, EndpointTags, EndpointSingleItem} {
		q.Endpoint(endpoint)
		if q.endpoint != endpoint {
			t.Errorf("endpoint = %q, want %q", q.endpoint, endpoint)
		}
	}
}

func TestQuery_Params(t *testing.T) {
	tests := []struct {
		name      string
		build     func(q *Query)
		wantKey   string
		wantValue string
	}{
		{"search", func(q *Query) { q.Search("politics") }, "q", "politics"},
		{"page", func(q *Query) { q.Page(10) }, "page", "10"},
		{"page size", func(q *Query) { q.PageSize(20) }, "page-size", "20"},
		{"order by", func(q *Query) { q.OrderBy(OrderByRelevance) }, "order-by", "relevance"},
		{"order date", func(q *Query) { q.OrderDate(OrderDateNewspaperEdition) }, "order-date", "newspaper-edition"},
		{"use date", func(q *Query) { q.UseDate(UseDateFirstPublication) }, "use-date", "first-publication"},
		{"show fields", func(q *Query) { q.ShowFields(FieldShortURL, FieldByline, FieldStarRating) }, "show-fields", "shortUrl,byline,starRating"},
		{"show fields all wins", func(q *Query) { q.ShowFields(FieldShortURL, FieldByline, FieldAll) }, "show-fields", "all"},
		{"show fields empty", func(q *Query) { q.ShowFields() }, "show-fields", ""},
		{"query fields", func(q *Query) { q.QueryFields(FieldProductionOffice) }, "query-fields", "productionOffice"},
		{"show tags", func(q *Query) { q.ShowTags(TagTypeBlog, TagTypeContributor) }, "show-tags", "blog,contributor"},
		{"show tags all wins", func(q *Query) { q.ShowTags(TagTypeBlog, TagTypeAll, TagTypeTone) }, "show-tags", "all"},
		{"date from", func(q *Query) { q.DateFrom(2020, 1, 1) }, "from-date", "2020-1-1"},
		{"date to", func(q *Query) { q.DateTo(2020, 1, 1) }, "to-date", "2020-1-1"},
		{"datetime from", func(q *Query) { q.DatetimeFrom(2021, 12, 31, 0, 0, 0, 5) }, "from-date", "2021-12-31T00:00:00+05:00"},
		{"datetime to", func(q *Query) { q.DatetimeTo(2021, 12, 31, 0, 0, 0, -5) }, "to-date", "2021-12-31T00:00:00-05:00"},
		{"datetime to invalid offset", func(q *Query) { q.DatetimeTo(2021, 12, 31, 0, 0, 0, 999) }, "to-date", "2021-12-31T00:00:00+00:00"},
		{"show section", func(q *Query) { q.ShowSection(true) }, "show-section", "true"},
		{"section", func(q *Query) { q.Section("food") }, "section", "food"},
		{"reference", func(q *Query) { q.Reference("isbn/9780718178949") }, "reference", "isbn/9780718178949"},
		{"reference type", func(q *Query) { q.ReferenceType("isbn") }, "reference-type", "isbn"},
		{"tag", func(q *Query) { q.Tag("technology/apple") }, "tag", "technology/apple"},
		{"ids", func(q *Query) { q.IDs("world/2022/jan/01/funeral-of-desmond-tutu-takes-place-in-cape-town") }, "ids", "world/2022/jan/01/funeral-of-desmond-tutu-takes-place-in-cape-town"},
		{"production office", func(q *Query) { q.ProductionOffice("aus") }, "production-office", "aus"},
		{"lang", func(q *Query) { q.Lang("fr") }, "lang", "fr"},
		{"star rating", func(q *Query) { q.StarRating(3) }, "star-rating", "3"},
		{"tag type", func(q *Query) { q.TagType("tv-and-radio/us-television") }, "type", "tv-and-radio/us-television"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newTestQuery()
			tt.build(q)

			got, ok := q.params[tt.wantKey]
			if !ok {
				t.Fatalf("param %q not set", tt.wantKey)
			}
			if got != tt.wantValue {
				t.Errorf("param %q = %q, want %q", tt.wantKey, got, tt.wantValue)
			}
		})
	}
}

func TestQuery_OrderByOverwrite(t *testing.T) {
	q := newTestQuery()

	q.OrderBy(OrderByOldest)
	if got := q.params["order-by"]; got != "oldest" {
		t.Errorf("order-by = %q, want %q", got, "oldest")
	}

	q.OrderBy(OrderByNewest)
	if got := q.params["order-by"]; got != "newest" {
		t.Errorf("order-by after overwrite = %q, want %q", got, "newest")
	}
	if len(q.params) != 1 {
		t.Errorf("params size = %d, want 1", len(q.params))
	}
}

func TestQuery_SearchOverwrite(t *testing.T) {
	q := newTestQuery().Search("first").Search("second")

	if got := q.params["q"]; got != "second" {
		t.Errorf("q = %q, want %q", got, "second")
	}
}

func TestQuery_DatetimeInvalidDateLeavesParamUnset(t *testing.T) {
	q := newTestQuery()

	q.DatetimeTo(2021, 13, 40, 0, 0, 0, 5)
	if _, ok := q.params["to-date"]; ok {
		t.Errorf("to-date = %q, want unset", q.params["to-date"])
	}

	q.DatetimeFrom(2021, 2, 30, 0, 0, 0, 0)
	if _, ok := q.params["from-date"]; ok {
		t.Errorf("from-date = %q, want unset", q.params["from-date"])
	}
}

func TestQuery_ShowBlocks(t *testing.T) {
	tests := []struct {
		name   string
		blocks []BlockSelector
		want   string
	}{
		{"main", []BlockSelector{BlockMain}, "main"},
		{"body", []BlockSelector{BlockBody}, "body"},
		{"body latest", []BlockSelector{BlockBodyLatest}, "body:latest"},
		{"body latest with limit", []BlockSelector{BlockBodyLatestN(3)}, "body:latest:3"},
		{"body oldest with limit", []BlockSelector{BlockBodyOldestN(7)}, "body:oldest:7"},
		{"body block id", []BlockSelector{BlockBodyID("56d03a30e4b0bd5a0524cbab")}, "body:56d03a30e4b0bd5a0524cbab"},
		{"body around block id", []BlockSelector{BlockBodyAround("123456789")}, "body:around:123456789"},
		{"body around block id with limit", []BlockSelector{BlockBodyAroundN("123456789", 10)}, "body:around:123456789:10"},
		{"key events", []BlockSelector{BlockBodyKeyEvents}, "body:key-events"},
		{"published since", []BlockSelector{BlockBodyPublishedSince(123456)}, "body:published-since:123456"},
		{"combined", []BlockSelector{BlockBodyPublishedSince(123456), BlockBodyKeyEvents}, "body:published-since:123456,body:key-events"},
		{"all wins", []BlockSelector{BlockMain, BlockAll, BlockBodyKeyEvents}, "all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newTestQuery().ShowBlocks(tt.blocks...)

			if got := q.params["show-blocks"]; got != tt.want {
				t.Errorf("show-blocks = %q, want %q", got, tt.want)
			}
		})
	}
}
