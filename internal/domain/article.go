package domain

import (
	"strconv"
	"strings"
	"time"

	guardian "github.com/openplatform/guardian-go"
)

// Article is one archived content item. GuardianID is the upstream
// content id and is unique per article.
type Article struct {
	ID          int64
	GuardianID  string
	Type        string
	Section     string
	SectionName string
	Title       string
	WebURL      string
	APIURL      string
	Byline      string
	TrailText   string
	Wordcount   int
	PublishedAt *time.Time
	ArchivedAt  time.Time
}

// NewArticleFromResult maps a search result onto an Article. Display
// fields are only present when the search requested them.
func NewArticleFromResult(result guardian.SearchResult) *Article {
	article := &Article{
		GuardianID:  result.ID,
		Type:        result.Type,
		Section:     result.SectionID,
		SectionName: result.SectionName,
		Title:       result.WebTitle,
		WebURL:      result.WebURL,
		APIURL:      result.APIURL,
		PublishedAt: result.WebPublicationDate,
	}

	if fields := result.Fields; fields != nil {
		if fields.Byline != nil {
			article.Byline = *fields.Byline
		}
		if fields.TrailText != nil {
			article.TrailText = *fields.TrailText
		}
		if fields.Wordcount != nil {
			// the API serialises the word count as a string
			if count, err := strconv.Atoi(*fields.Wordcount); err == nil {
				article.Wordcount = count
			}
		}
	}

	return article
}

func (a *Article) Validate() error {
	if strings.TrimSpace(a.GuardianID) == "" {
		return ErrMissingGuardianID
	}
	if strings.TrimSpace(a.Title) == "" {
		return ErrMissingTitle
	}
	return nil
}
