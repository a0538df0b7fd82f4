package model

import "signalist/pkg/news"

// DigestResult is one recipient's outcome for a single digest cycle. It is
// created fresh per run and discarded after dispatch.
type DigestResult struct {
	User      User
	Articles  []news.Article
	Summary   string
	Succeeded bool
}

// JobResult is the structured outcome every trigger entry point returns;
// nothing else surfaces past the job boundary.
type JobResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
