package guardian

import "time"

// responseEnvelope is the outer JSON object. A well-formed response
// carries exactly one of the two fields: a top-level error message or
// the payload.
type responseEnvelope struct {
	Message  *string         `json:"message,omitempty"`
	Response *SearchResponse `json:"response,omitempty"`
}

// SearchResponse is the decoded payload of a dispatched query. Every
// field the API may omit is a pointer or nilable container; the wire
// JSON is tolerated with unknown extra fields.
type SearchResponse struct {
	Status      *string        `json:"status,omitempty"`
	UserTier    *string        `json:"userTier,omitempty"`
	Total       *int           `json:"total,omitempty"`
	StartIndex  *int           `json:"startIndex,omitempty"`
	PageSize    *int           `json:"pageSize,omitempty"`
	CurrentPage *int           `json:"currentPage,omitempty"`
	Pages       *int           `json:"pages,omitempty"`
	OrderBy     *string        `json:"orderBy,omitempty"`
	Results     []SearchResult `json:"results,omitempty"`
	// Content is populated instead of Results on the single-item endpoint.
	Content *SearchResult `json:"content,omitempty"`
	Message *string       `json:"message,omitempty"`
}

// SearchResult is one content item.
type SearchResult struct {
	ID                 string     `json:"id"`
	Type               string     `json:"type,omitempty"`
	SectionID          string     `json:"sectionId,omitempty"`
	SectionName        string     `json:"sectionName,omitempty"`
	WebPublicationDate *time.Time `json:"webPublicationDate,omitempty"`
	WebTitle           string     `json:"webTitle,omitempty"`
	WebURL             string     `json:"webUrl,omitempty"`
	APIURL             string     `json:"apiUrl,omitempty"`
	IsHosted           bool       `json:"isHosted,omitempty"`
	PillarID           *string    `json:"pillarId,omitempty"`
	PillarName         *string    `json:"pillarName,omitempty"`

	// Only present when the corresponding show-* parameter was requested.
	Fields  *Fields  `json:"fields,omitempty"`
	Tags    []Tag    `json:"tags,omitempty"`
	Section *Section `json:"section,omitempty"`
	Blocks  *Blocks  `json:"blocks,omitempty"`
}

// Fields is the free-form display metadata requested via show-fields.
// The API serialises most of it as strings, including booleans and
// numbers.
type Fields struct {
	TrailText            *string    `json:"trailText,omitempty"`
	Headline             *string    `json:"headline,omitempty"`
	ShowInRelatedContent *string    `json:"showInRelatedContent,omitempty"`
	Body                 *string    `json:"body,omitempty"`
	BodyText             *string    `json:"bodyText,omitempty"`
	LastModified         *time.Time `json:"lastModified,omitempty"`
	HasStoryPackage      *string    `json:"hasStoryPackage,omitempty"`
	Score                *string    `json:"score,omitempty"`
	Standfirst           *string    `json:"standfirst,omitempty"`
	ShortURL             *string    `json:"shortUrl,omitempty"`
	Byline               *string    `json:"byline,omitempty"`
	Thumbnail            *string    `json:"thumbnail,omitempty"`
	Wordcount            *string    `json:"wordcount,omitempty"`
	Commentable          *string    `json:"commentable,omitempty"`
	IsPremoderated       *string    `json:"isPremoderated,omitempty"`
	AllowUGC             *string    `json:"allowUgc,omitempty"`
	Publication          *string    `json:"publication,omitempty"`
	InternalPageCode     *string    `json:"internalPageCode,omitempty"`
	ProductionOffice     *string    `json:"productionOffice,omitempty"`
	ShouldHideAdverts    *string    `json:"shouldHideAdverts,omitempty"`
	LiveBloggingNow      *string    `json:"liveBloggingNow,omitempty"`
	CommentCloseDate     *time.Time `json:"commentCloseDate,omitempty"`
	StarRating           *string    `json:"starRating,omitempty"`
}

// Tag is one metadata tag attached to a result via show-tags.
type Tag struct {
	ID             string  `json:"id"`
	Type           string  `json:"type,omitempty"`
	SectionID      *string `json:"sectionId,omitempty"`
	SectionName    *string `json:"sectionName,omitempty"`
	WebTitle       string  `json:"webTitle,omitempty"`
	WebURL         string  `json:"webUrl,omitempty"`
	APIURL         string  `json:"apiUrl,omitempty"`
	Description    *string `json:"description,omitempty"`
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	BylineImageURL *string `json:"bylineImageUrl,omitempty"`
}

// Section is the section metadata requested via show-section.
type Section struct {
	ID       string    `json:"id"`
	WebTitle string    `json:"webTitle,omitempty"`
	WebURL   string    `json:"webUrl,omitempty"`
	APIURL   string    `json:"apiUrl,omitempty"`
	Editions []Edition `json:"editions,omitempty"`
}

// Edition is one of the site front pages a section appears on.
type Edition struct {
	ID       string `json:"id"`
	WebTitle string `json:"webTitle,omitempty"`
	WebURL   string `json:"webUrl,omitempty"`
	APIURL   string `json:"apiUrl,omitempty"`
	Code     string `json:"code,omitempty"`
}

// Blocks is the content body decomposition requested via show-blocks.
type Blocks struct {
	Main                *Block             `json:"main,omitempty"`
	Body                []Block            `json:"body,omitempty"`
	TotalBodyBlocks     *int               `json:"totalBodyBlocks,omitempty"`
	RequestedBodyBlocks map[string][]Block `json:"requestedBodyBlocks,omitempty"`
}

// Block is one unit of rich content body, e.g. a liveblog update.
type Block struct {
	ID                 string           `json:"id"`
	BodyHTML           string           `json:"bodyHtml,omitempty"`
	BodyTextSummary    string           `json:"bodyTextSummary,omitempty"`
	Title              *string          `json:"title,omitempty"`
	Attributes         *BlockAttributes `json:"attributes,omitempty"`
	Published          bool             `json:"published,omitempty"`
	CreatedDate        *time.Time       `json:"createdDate,omitempty"`
	FirstPublishedDate *time.Time       `json:"firstPublishedDate,omitempty"`
	PublishedDate      *time.Time       `json:"publishedDate,omitempty"`
	LastModifiedDate   *time.Time       `json:"lastModifiedDate,omitempty"`
	Contributors       []string         `json:"contributors,omitempty"`
	Elements           []BlockElement   `json:"elements,omitempty"`
}

type BlockAttributes struct {
	KeyEvent *bool   `json:"keyEvent,omitempty"`
	Summary  *bool   `json:"summary,omitempty"`
	Title    *string `json:"title,omitempty"`
}

// Asset is one media attachment of a block element.
type Asset struct {
	Type     string         `json:"type,omitempty"`
	MimeType *string        `json:"mimeType,omitempty"`
	File     *string        `json:"file,omitempty"`
	TypeData *AssetTypeData `json:"typeData,omitempty"`
}

type AssetTypeData struct {
	Width           *int    `json:"width,omitempty"`
	Height          *int    `json:"height,omitempty"`
	Caption         *string `json:"caption,omitempty"`
	Credit          *string `json:"credit,omitempty"`
	DisplayCredit   *bool   `json:"displayCredit,omitempty"`
	Source          *string `json:"source,omitempty"`
	Photographer    *string `json:"photographer,omitempty"`
	Alt             *string `json:"altText,omitempty"`
	MediaID         *string `json:"mediaId,omitempty"`
	IsMaster        *bool   `json:"isMaster,omitempty"`
	DurationSeconds *int    `json:"durationSeconds,omitempty"`
}
