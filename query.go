package guardian

import "strconv"

// Query accumulates validated query parameters for one request. Every
// method stores a single wire parameter and returns the Query for
// chaining; setting the same parameter twice keeps the last value.
type Query struct {
	client   *Client
	endpoint Endpoint
	params   map[string]string
}

// Endpoint targets a different part of the API. The default is
// EndpointContent.
func (q *Query) Endpoint(endpoint Endpoint) *Query {
	q.endpoint = endpoint
	return q
}

// Search sets the free-text search term. Supports AND, OR and NOT
// operators and exact phrases in double quotes. For EndpointSingleItem
// the term is the item id and becomes the request path.
func (q *Query) Search(query string) *Query {
	q.params["q"] = query
	return q
}

// Page selects a page of the paginated result list.
func (q *Query) Page(page int) *Query {
	q.params["page"] = strconv.Itoa(page)
	return q
}

// PageSize overrides the default page size of 10. The API accepts values
// between 1 and 200; out-of-range values are rejected upstream.
func (q *Query) PageSize(size int) *Query {
	q.params["page-size"] = strconv.Itoa(size)
	return q
}

// OrderBy returns results in the given order.
func (q *Query) OrderBy(order OrderBy) *Query {
	q.params["order-by"] = order.String()
	return q
}

// OrderDate changes which date the ordering applies to.
func (q *Query) OrderDate(date OrderDate) *Query {
	q.params["order-date"] = date.String()
	return q
}

// UseDate changes which date the DateFrom/DateTo filters apply to.
func (q *Query) UseDate(date UseDate) *Query {
	q.params["use-date"] = date.String()
	return q
}

// ShowFields attaches the given display fields to each result.
// FieldAll overrides all other fields.
func (q *Query) ShowFields(fields ...Field) *Query {
	q.params["show-fields"] = joinTokens(fields)
	return q
}

// QueryFields restricts which indexed fields the search term is matched
// against.
func (q *Query) QueryFields(fields ...Field) *Query {
	q.params["query-fields"] = joinTokens(fields)
	return q
}

// ShowTags attaches tags of the given categories to each result.
// TagTypeAll overrides all other categories.
func (q *Query) ShowTags(tags ...TagType) *Query {
	q.params["show-tags"] = joinTokens(tags)
	return q
}

// ShowBlocks attaches the selected content blocks to each result.
// BlockAll overrides all other selectors.
func (q *Query) ShowBlocks(blocks ...BlockSelector) *Query {
	q.params["show-blocks"] = joinTokens(blocks)
	return q
}

// DateFrom returns only content published on or after the given date.
func (q *Query) DateFrom(year, month, day int) *Query {
	q.params["from-date"] = formatDate(year, month, day)
	return q
}

// DateTo returns only content published on or before the given date.
func (q *Query) DateTo(year, month, day int) *Query {
	q.params["to-date"] = formatDate(year, month, day)
	return q
}

// DatetimeFrom is the time-of-day variant of DateFrom. tzOffset is a
// signed hour offset from UTC; offsets outside the representable range
// fall back to UTC. An invalid calendar combination leaves the
// parameter unset.
func (q *Query) DatetimeFrom(year, month, day, hour, min, sec, tzOffset int) *Query {
	if formatted := formatDatetime(year, month, day, hour, min, sec, tzOffset); formatted != "" {
		q.params["from-date"] = formatted
	}
	return q
}

// DatetimeTo is the time-of-day variant of DateTo. See DatetimeFrom.
func (q *Query) DatetimeTo(year, month, day, hour, min, sec, tzOffset int) *Query {
	if formatted := formatDatetime(year, month, day, hour, min, sec, tzOffset); formatted != "" {
		q.params["to-date"] = formatted
	}
	return q
}

// ShowSection attaches the section metadata to each result.
func (q *Query) ShowSection(show bool) *Query {
	q.params["show-section"] = strconv.FormatBool(show)
	return q
}

// Section returns only content in the given section, e.g. "football".
func (q *Query) Section(section string) *Query {
	q.params["section"] = section
	return q
}

// Reference returns only content with the given reference,
// e.g. "isbn/9780718178949".
func (q *Query) Reference(reference string) *Query {
	q.params["reference"] = reference
	return q
}

// ReferenceType returns only content with references of the given type,
// e.g. "isbn".
func (q *Query) ReferenceType(referenceType string) *Query {
	q.params["reference-type"] = referenceType
	return q
}

// Tag returns only content with the given tag, e.g. "technology/apple".
func (q *Query) Tag(tag string) *Query {
	q.params["tag"] = tag
	return q
}

// IDs returns only content with the given ids.
func (q *Query) IDs(ids string) *Query {
	q.params["ids"] = ids
	return q
}

// ProductionOffice returns only content from the given production
// office, e.g. "uk".
func (q *Query) ProductionOffice(office string) *Query {
	q.params["production-office"] = office
	return q
}

// Lang returns only content in the given ISO language code, e.g. "en".
func (q *Query) Lang(lang string) *Query {
	q.params["lang"] = lang
	return q
}

// StarRating returns only reviews with the given star rating, 1 to 5.
func (q *Query) StarRating(rating int) *Query {
	q.params["star-rating"] = strconv.Itoa(rating)
	return q
}

// TagType returns only tags of the given type. Only meaningful when the
// endpoint is EndpointTags.
func (q *Query) TagType(tagType string) *Query {
	q.params["type"] = tagType
	return q
}
