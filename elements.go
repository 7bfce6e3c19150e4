package guardian

import (
	"encoding/json"
	"time"
)

// ElementType is the type token of a block element. It selects which
// of the *TypeData wire fields carries the element's payload.
type ElementType string

const (
	ElementText        ElementType = "text"
	ElementImage       ElementType = "image"
	ElementVideo       ElementType = "video"
	ElementTweet       ElementType = "tweet"
	ElementAudio       ElementType = "audio"
	ElementPullquote   ElementType = "pullquote"
	ElementInteractive ElementType = "interactive"
	ElementMap         ElementType = "map"
	ElementDocument    ElementType = "document"
	ElementTable       ElementType = "table"
	ElementWitness     ElementType = "witness"
	ElementRichLink    ElementType = "rich-link"
	ElementMembership  ElementType = "membership"
	ElementEmbed       ElementType = "embed"
	ElementInstagram   ElementType = "instagram"
	ElementComment     ElementType = "comment"
	ElementVine        ElementType = "vine"
	ElementContentAtom ElementType = "contentatom"
	ElementCode        ElementType = "code"
)

// BlockElement is one typed sub-component of a block. On the wire it is
// a product of ~19 mutually exclusive *TypeData objects keyed by the
// type token; here it is a tagged union: Data holds the payload matching
// Type, or nil when the token is unknown or its payload is absent.
type BlockElement struct {
	Type   ElementType
	Assets []Asset
	Data   ElementData
}

// ElementData is implemented by every element payload type.
type ElementData interface {
	elementType() ElementType
}

type TextElementData struct {
	HTML *string `json:"html,omitempty"`
}

type ImageElementData struct {
	Caption       *string `json:"caption,omitempty"`
	Copyright     *string `json:"copyright,omitempty"`
	DisplayCredit *bool   `json:"displayCredit,omitempty"`
	Credit        *string `json:"credit,omitempty"`
	Source        *string `json:"source,omitempty"`
	Photographer  *string `json:"photographer,omitempty"`
	Alt           *string `json:"alt,omitempty"`
	MediaID       *string `json:"mediaId,omitempty"`
	Role          *string `json:"role,omitempty"`
}

type VideoElementData struct {
	URL           *string `json:"url,omitempty"`
	OriginalURL   *string `json:"originalUrl,omitempty"`
	Description   *string `json:"description,omitempty"`
	Title         *string `json:"title,omitempty"`
	HTML          *string `json:"html,omitempty"`
	Source        *string `json:"source,omitempty"`
	Credit        *string `json:"credit,omitempty"`
	Caption       *string `json:"caption,omitempty"`
	Height        *int    `json:"height,omitempty"`
	Width         *int    `json:"width,omitempty"`
	Duration      *int    `json:"duration,omitempty"`
	StillImageURL *string `json:"stillImageUrl,omitempty"`
	Role          *string `json:"role,omitempty"`
}

type TweetElementData struct {
	ID          *string `json:"id,omitempty"`
	URL         *string `json:"url,omitempty"`
	OriginalURL *string `json:"originalUrl,omitempty"`
	Source      *string `json:"source,omitempty"`
	HTML        *string `json:"html,omitempty"`
	AuthorName  *string `json:"authorName,omitempty"`
	Role        *string `json:"role,omitempty"`
}

type AudioElementData struct {
	HTML            *string `json:"html,omitempty"`
	Source          *string `json:"source,omitempty"`
	Description     *string `json:"description,omitempty"`
	Title           *string `json:"title,omitempty"`
	Credit          *string `json:"credit,omitempty"`
	Caption         *string `json:"caption,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	DurationSeconds *int    `json:"durationSeconds,omitempty"`
	Clean           *bool   `json:"clean,omitempty"`
	Explicit        *bool   `json:"explicit,omitempty"`
}

type PullquoteElementData struct {
	HTML        *string `json:"html,omitempty"`
	Attribution *string `json:"attribution,omitempty"`
	Role        *string `json:"role,omitempty"`
}

type InteractiveElementData struct {
	URL         *string `json:"url,omitempty"`
	OriginalURL *string `json:"originalUrl,omitempty"`
	Source      *string `json:"source,omitempty"`
	Caption     *string `json:"caption,omitempty"`
	Alt         *string `json:"alt,omitempty"`
	ScriptURL   *string `json:"scriptUrl,omitempty"`
	ScriptName  *string `json:"scriptName,omitempty"`
	HTML        *string `json:"html,omitempty"`
	IsMandatory *bool   `json:"isMandatory,omitempty"`
	Role        *string `json:"role,omitempty"`
}

type MapElementData struct {
	URL         *string `json:"url,omitempty"`
	OriginalURL *string `json:"originalUrl,omitempty"`
	Source      *string `json:"source,omitempty"`
	Title       *string `json:"title,omitempty"`
	HTML        *string `json:"html,omitempty"`
	Caption     *string `json:"caption,omitempty"`
}

type DocumentElementData struct {
	URL         *string `json:"url,omitempty"`
	OriginalURL *string `json:"originalUrl,omitempty"`
	Source      *string `json:"source,omitempty"`
	Title       *string `json:"title,omitempty"`
	HTML        *string `json:"html,omitempty"`
	Embeddable  *bool   `json:"embeddable,omitempty"`
}

type TableElementData struct {
	HTML        *string `json:"html,omitempty"`
	Source      *string `json:"source,omitempty"`
	IsMandatory *bool   `json:"isMandatory,omitempty"`
}

type WitnessElementData struct {
	URL            *string    `json:"url,omitempty"`
	OriginalURL    *string    `json:"originalUrl,omitempty"`
	Title          *string    `json:"title,omitempty"`
	Description    *string    `json:"description,omitempty"`
	AuthorName     *string    `json:"authorName,omitempty"`
	AuthorUsername *string    `json:"authorUsername,omitempty"`
	Source         *string    `json:"source,omitempty"`
	Caption        *string    `json:"caption,omitempty"`
	Alt            *string    `json:"alt,omitempty"`
	HTML           *string    `json:"html,omitempty"`
	APIURL         *string    `json:"apiUrl,omitempty"`
	Photographer   *string    `json:"photographer,omitempty"`
	DateCreated    *time.Time `json:"dateCreated,omitempty"`
}

type RichLinkElementData struct {
	URL         *string `json:"url,omitempty"`
	OriginalURL *string `json:"originalUrl,omitempty"`
	LinkText    *string `json:"linkText,omitempty"`
	LinkPrefix  *string `json:"linkPrefix,omitempty"`
	Role        *string `json:"role,omitempty"`
}

type MembershipElementData struct {
	OriginalURL *string    `json:"originalUrl,omitempty"`
	LinkText    *string    `json:"linkText,omitempty"`
	LinkPrefix  *string    `json:"linkPrefix,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Price       *string    `json:"price,omitempty"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
}

type EmbedElementData struct {
	HTML          *string `json:"html,omitempty"`
	SafeEmbedCode *bool   `json:"safeEmbedCode,omitempty"`
	Alt           *string `json:"alt,omitempty"`
	IsMandatory   *bool   `json:"isMandatory,omitempty"`
	Role          *string `json:"role,omitempty"`
}

type InstagramElementData struct {
	OriginalURL    *string `json:"originalUrl,omitempty"`
	Title          *string `json:"title,omitempty"`
	Source         *string `json:"source,omitempty"`
	AuthorURL      *string `json:"authorUrl,omitempty"`
	AuthorUsername *string `json:"authorUsername,omitempty"`
	HTML           *string `json:"html,omitempty"`
	Width          *int    `json:"width,omitempty"`
	Alt            *string `json:"alt,omitempty"`
	Caption        *string `json:"caption,omitempty"`
}

type CommentElementData struct {
	Source        *string `json:"source,omitempty"`
	SourceURL     *string `json:"sourceUrl,omitempty"`
	OriginalURL   *string `json:"originalUrl,omitempty"`
	DiscussionKey *string `json:"discussionKey,omitempty"`
	AuthorURL     *string `json:"authorUrl,omitempty"`
	AuthorName    *string `json:"authorName,omitempty"`
	CommentID     *int    `json:"commentId,omitempty"`
	HTML          *string `json:"html,omitempty"`
}

type VineElementData struct {
	OriginalURL    *string `json:"originalUrl,omitempty"`
	Title          *string `json:"title,omitempty"`
	Source         *string `json:"source,omitempty"`
	AuthorURL      *string `json:"authorUrl,omitempty"`
	AuthorUsername *string `json:"authorUsername,omitempty"`
	HTML           *string `json:"html,omitempty"`
	Width          *int    `json:"width,omitempty"`
	Alt            *string `json:"alt,omitempty"`
	Caption        *string `json:"caption,omitempty"`
}

type ContentAtomElementData struct {
	AtomID   *string `json:"atomId,omitempty"`
	AtomType *string `json:"atomType,omitempty"`
	Role     *string `json:"role,omitempty"`
}

type CodeElementData struct {
	HTML     *string `json:"html,omitempty"`
	Language *string `json:"language,omitempty"`
}

func (*TextElementData) elementType() ElementType        { return ElementText }
func (*ImageElementData) elementType() ElementType       { return ElementImage }
func (*VideoElementData) elementType() ElementType       { return ElementVideo }
func (*TweetElementData) elementType() ElementType       { return ElementTweet }
func (*AudioElementData) elementType() ElementType       { return ElementAudio }
func (*PullquoteElementData) elementType() ElementType   { return ElementPullquote }
func (*InteractiveElementData) elementType() ElementType { return ElementInteractive }
func (*MapElementData) elementType() ElementType         { return ElementMap }
func (*DocumentElementData) elementType() ElementType    { return ElementDocument }
func (*TableElementData) elementType() ElementType       { return ElementTable }
func (*WitnessElementData) elementType() ElementType     { return ElementWitness }
func (*RichLinkElementData) elementType() ElementType    { return ElementRichLink }
func (*MembershipElementData) elementType() ElementType  { return ElementMembership }
func (*EmbedElementData) elementType() ElementType       { return ElementEmbed }
func (*InstagramElementData) elementType() ElementType   { return ElementInstagram }
func (*CommentElementData) elementType() ElementType     { return ElementComment }
func (*VineElementData) elementType() ElementType        { return ElementVine }
func (*ContentAtomElementData) elementType() ElementType { return ElementContentAtom }
func (*CodeElementData) elementType() ElementType        { return ElementCode }

// blockElementWire is the flat wire shape of a block element.
type blockElementWire struct {
	Type        ElementType             `json:"type,omitempty"`
	Assets      []Asset                 `json:"assets,omitempty"`
	Text        *TextElementData        `json:"textTypeData,omitempty"`
	Image       *ImageElementData       `json:"imageTypeData,omitempty"`
	Video       *VideoElementData       `json:"videoTypeData,omitempty"`
	Tweet       *TweetElementData       `json:"tweetTypeData,omitempty"`
	Audio       *AudioElementData       `json:"audioTypeData,omitempty"`
	Pullquote   *PullquoteElementData   `json:"pullquoteTypeData,omitempty"`
	Interactive *InteractiveElementData `json:"interactiveTypeData,omitempty"`
	Map         *MapElementData         `json:"mapTypeData,omitempty"`
	Document    *DocumentElementData    `json:"documentTypeData,omitempty"`
	Table       *TableElementData       `json:"tableTypeData,omitempty"`
	Witness     *WitnessElementData     `json:"witnessTypeData,omitempty"`
	RichLink    *RichLinkElementData    `json:"richLinkTypeData,omitempty"`
	Membership  *MembershipElementData  `json:"membershipTypeData,omitempty"`
	Embed       *EmbedElementData       `json:"embedTypeData,omitempty"`
	Instagram   *InstagramElementData   `json:"instagramTypeData,omitempty"`
	Comment     *CommentElementData     `json:"commentTypeData,omitempty"`
	Vine        *VineElementData        `json:"vineTypeData,omitempty"`
	ContentAtom *ContentAtomElementData `json:"contentAtomTypeData,omitempty"`
	Code        *CodeElementData        `json:"codeTypeData,omitempty"`
}

// payload returns the wire field matching the type token, ignoring any
// other populated fields.
func (w *blockElementWire) payload() ElementData {
	switch w.Type {
	case ElementText:
		if w.Text != nil {
			return w.Text
		}
	case ElementImage:
		if w.Image != nil {
			return w.Image
		}
	case ElementVideo:
		if w.Video != nil {
			return w.Video
		}
	case ElementTweet:
		if w.Tweet != nil {
			return w.Tweet
		}
	case ElementAudio:
		if w.Audio != nil {
			return w.Audio
		}
	case ElementPullquote:
		if w.Pullquote != nil {
			return w.Pullquote
		}
	case ElementInteractive:
		if w.Interactive != nil {
			return w.Interactive
		}
	case ElementMap:
		if w.Map != nil {
			return w.Map
		}
	case ElementDocument:
		if w.Document != nil {
			return w.Document
		}
	case ElementTable:
		if w.Table != nil {
			return w.Table
		}
	case ElementWitness:
		if w.Witness != nil {
			return w.Witness
		}
	case ElementRichLink:
		if w.RichLink != nil {
			return w.RichLink
		}
	case ElementMembership:
		if w.Membership != nil {
			return w.Membership
		}
	case ElementEmbed:
		if w.Embed != nil {
			return w.Embed
		}
	case ElementInstagram:
		if w.Instagram != nil {
			return w.Instagram
		}
	case ElementComment:
		if w.Comment != nil {
			return w.Comment
		}
	case ElementVine:
		if w.Vine != nil {
			return w.Vine
		}
	case ElementContentAtom:
		if w.ContentAtom != nil {
			return w.ContentAtom
		}
	case ElementCode:
		if w.Code != nil {
			return w.Code
		}
	}
	return nil
}

func (e *BlockElement) UnmarshalJSON(data []byte) error {
	var wire blockElementWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	e.Type = wire.Type
	e.Assets = wire.Assets
	e.Data = wire.payload()
	return nil
}

func (e BlockElement) MarshalJSON() ([]byte, error) {
	wire := blockElementWire{Type: e.Type, Assets: e.Assets}

	switch d := e.Data.(type) {
	case *TextElementData:
		wire.Text = d
	case *ImageElementData:
		wire.Image = d
	case *VideoElementData:
		wire.Video = d
	case *TweetElementData:
		wire.Tweet = d
	case *AudioElementData:
		wire.Audio = d
	case *PullquoteElementData:
		wire.Pullquote = d
	case *InteractiveElementData:
		wire.Interactive = d
	case *MapElementData:
		wire.Map = d
	case *DocumentElementData:
		wire.Document = d
	case *TableElementData:
		wire.Table = d
	case *WitnessElementData:
		wire.Witness = d
	case *RichLinkElementData:
		wire.RichLink = d
	case *MembershipElementData:
		wire.Membership = d
	case *EmbedElementData:
		wire.Embed = d
	case *InstagramElementData:
		wire.Instagram = d
	case *CommentElementData:
		wire.Comment = d
	case *VineElementData:
		wire.Vine = d
	case *ContentAtomElementData:
		wire.ContentAtom = d
	case *CodeElementData:
		wire.Code = d
	}

	return json.Marshal(wire)
}
