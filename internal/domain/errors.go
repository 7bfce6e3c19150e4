package domain

import "errors"

var (
	ErrMissingGuardianID = errors.New("missing guardian id")
	ErrMissingTitle      = errors.New("missing title")
	ErrDuplicateArticle  = errors.New("article already archived")
	ErrArticleNotFound   = errors.New("article not found")
)
