package guardian

import "strings"

// OrderBy controls the ordering of search results.
type OrderBy string

const (
	OrderByNewest    OrderBy = "newest"
	OrderByOldest    OrderBy = "oldest"
	OrderByRelevance OrderBy = "relevance"
)

func (o OrderBy) IsValid() bool {
	switch o {
	case OrderByNewest, OrderByOldest, OrderByRelevance:
		return true
	default:
		return false
	}
}

func (o OrderBy) String() string {
	return string(o)
}

// OrderDate selects which date the ordering is applied to.
type OrderDate string

const (
	OrderDatePublished        OrderDate = "published"
	OrderDateNewspaperEdition OrderDate = "newspaper-edition"
	OrderDateLastModified     OrderDate = "last-modified"
)

func (o OrderDate) IsValid() bool {
	switch o {
	case OrderDatePublished, OrderDateNewspaperEdition, OrderDateLastModified:
		return true
	default:
		return false
	}
}

func (o OrderDate) String() string {
	return string(o)
}

// UseDate selects which date the from-date/to-date filters apply to.
type UseDate string

const (
	UseDatePublished        UseDate = "published"
	UseDateFirstPublication UseDate = "first-publication"
	UseDateNewspaperEdition UseDate = "newspaper-edition"
	UseDateLastModified     UseDate = "last-modified"
)

func (u UseDate) IsValid() bool {
	switch u {
	case UseDatePublished, UseDateFirstPublication, UseDateNewspaperEdition, UseDateLastModified:
		return true
	default:
		return false
	}
}

func (u UseDate) String() string {
	return string(u)
}

// Field names a piece of display metadata that can be requested via
// show-fields or searched via query-fields. FieldAll overrides every
// other member of the list it appears in.
type Field string

const (
	FieldTrailText            Field = "trailText"
	FieldHeadline             Field = "headline"
	FieldShowInRelatedContent Field = "showInRelatedContent"
	FieldBody                 Field = "body"
	FieldBodyText             Field = "bodyText"
	FieldLastModified         Field = "lastModified"
	FieldHasStoryPackage      Field = "hasStoryPackage"
	FieldScore                Field = "score"
	FieldStandfirst           Field = "standfirst"
	FieldShortURL             Field = "shortUrl"
	FieldByline               Field = "byline"
	FieldThumbnail            Field = "thumbnail"
	FieldWordcount            Field = "wordcount"
	FieldCommentable          Field = "commentable"
	FieldIsPremoderated       Field = "isPremoderated"
	FieldAllowUGC             Field = "allowUgc"
	FieldPublication          Field = "publication"
	FieldInternalPageCode     Field = "internalPageCode"
	FieldProductionOffice     Field = "productionOffice"
	FieldShouldHideAdverts    Field = "shouldHideAdverts"
	FieldLiveBloggingNow      Field = "liveBloggingNow"
	FieldCommentCloseDate     Field = "commentCloseDate"
	FieldStarRating           Field = "starRating"
	FieldAll                  Field = "all"
)

func (f Field) String() string {
	return string(f)
}

// TagType names a tag category that can be requested via show-tags.
// TagTypeAll overrides every other member of the list it appears in.
type TagType string

const (
	TagTypeBlog                 TagType = "blog"
	TagTypeContributor          TagType = "contributor"
	TagTypeKeyword              TagType = "keyword"
	TagTypeNewspaperBook        TagType = "newspaper-book"
	TagTypeNewspaperBookSection TagType = "newspaper-book-section"
	TagTypePublication          TagType = "publication"
	TagTypeSeries               TagType = "series"
	TagTypeTone                 TagType = "tone"
	TagTypeType                 TagType = "type"
	TagTypeAll                  TagType = "all"
)

func (t TagType) String() string {
	return string(t)
}

// Endpoint selects which part of the API a query is dispatched to.
// EndpointContent is the default and resolves to the "search" path segment.
type Endpoint string

const (
	EndpointContent    Endpoint = "content"
	EndpointTags       Endpoint = "tags"
	EndpointSections   Endpoint = "sections"
	EndpointEditions   Endpoint = "editions"
	EndpointSingleItem Endpoint = "single-item"
)

func (e Endpoint) IsValid() bool {
	switch e {
	case EndpointContent, EndpointTags, EndpointSections, EndpointEditions, EndpointSingleItem:
		return true
	default:
		return false
	}
}

func (e Endpoint) String() string {
	return string(e)
}

// wildcard suppresses all other members of a show-fields, show-tags or
// show-blocks list, regardless of position.
const wildcard = "all"

func joinTokens[T ~string](items []T) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if string(item) == wildcard {
			return wildcard
		}
		parts = append(parts, string(item))
	}
	return strings.Join(parts, ",")
}
