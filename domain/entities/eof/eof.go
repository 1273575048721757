package eof

import (
	"fmt"

	"bikeshare/domain/entities"
)

const eofType = "EOF"

// EOFData marks the end of the reports of a session iteration.
// + Metadata: metadata added to the structure
// + SessionID: iteration whose reports were all sent
// + ReportsSent: amount of reports published before this EOF
type EOFData struct {
	Metadata    entities.Metadata `json:"metadata"`
	SessionID   string            `json:"session_id"`
	ReportsSent int               `json:"reports_sent"`
}

func NewEOF(metadata entities.Metadata, sessionID string, reportsSent int) *EOFData {
	metadata.Type = eofType
	metadata.Message = fmt.Sprintf("eof.%s.%s", sessionID, metadata.City)
	return &EOFData{
		Metadata:    metadata,
		SessionID:   sessionID,
		ReportsSent: reportsSent,
	}
}

func (eof EOFData) GetMetadata() entities.Metadata {
	return eof.Metadata
}
