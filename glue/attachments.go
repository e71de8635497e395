package glue

import (
	"context"
	"encoding/base64"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/afero"

	"github.com/docuglue/glue-go/glue/jsonapi"
)

const typeAttachments = "attachments"

// AttachmentsService manages files attached to a resource.
type AttachmentsService service

// AttachmentSpec describes one file to upload. The file is read in full
// when the request document is built, not when it is sent.
type AttachmentSpec struct {
	Path     string `json:"path"`
	FileName string `json:"file_name"`
}

func (s AttachmentSpec) validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Path, validation.Required),
		validation.Field(&s.FileName, validation.Required),
	)
}

type attachmentAttributes struct {
	Attachment attachmentPayload `json:"attachment"`
}

type attachmentPayload struct {
	Content  string `json:"content"`
	FileName string `json:"file_name"`
}

type attachmentUpdateAttributes struct {
	Name string `json:"name"`
}

// buildAttachmentsCreate validates every entry, then reads every file.
// Any failure aborts the build before a single byte goes on the wire.
func buildAttachmentsCreate(fs afero.Fs, in Input[AttachmentSpec]) (jsonapi.Document[attachmentAttributes], error) {
	var doc jsonapi.Document[attachmentAttributes]

	if in.single != nil {
		r, err := attachmentResource(fs, *in.single)
		if err != nil {
			return doc, err
		}
		return jsonapi.NewDocument(r), nil
	}

	if len(in.batch) == 0 {
		return doc, &ValidationError{Index: -1, Err: errors.New("at least one attachment is required")}
	}

	for i, spec := range in.batch {
		if err := spec.validate(); err != nil {
			return doc, &ValidationError{Index: i, Err: err}
		}
	}

	rs := make([]jsonapi.Resource[attachmentAttributes], 0, len(in.batch))
	for _, spec := range in.batch {
		r, err := attachmentResource(fs, spec)
		if err != nil {
			return doc, err
		}
		rs = append(rs, r)
	}

	return jsonapi.NewBatchDocument(rs), nil
}

func attachmentResource(fs afero.Fs, spec AttachmentSpec) (jsonapi.Resource[attachmentAttributes], error) {
	var r jsonapi.Resource[attachmentAttributes]

	content, err := afero.ReadFile(fs, spec.Path)
	if err != nil {
		return r, &FileReadError{Path: spec.Path, Err: err}
	}

	return jsonapi.Resource[attachmentAttributes]{
		Type: typeAttachments,
		Attributes: attachmentAttributes{
			Attachment: attachmentPayload{
				Content:  base64.StdEncoding.EncodeToString(content),
				FileName: spec.FileName,
			},
		},
	}, nil
}

// Create uploads one or more files to the given resource.
func (s *AttachmentsService) Create(ctx context.Context, rt ResourceType, resourceID int64, in Input[AttachmentSpec]) (*jsonapi.Response, error) {
	if err := rt.validate(); err != nil {
		return nil, err
	}

	doc, err := buildAttachmentsCreate(s.client.fs, in)
	if err != nil {
		return nil, err
	}

	return s.client.post(ctx, relationshipPath(rt, resourceID, typeAttachments), doc)
}

// Update renames an existing attachment.
func (s *AttachmentsService) Update(ctx context.Context, rt ResourceType, resourceID, attachmentID int64, name string) (*jsonapi.Response, error) {
	if err := rt.validate(); err != nil {
		return nil, err
	}

	doc := jsonapi.NewDocument(jsonapi.Resource[attachmentUpdateAttributes]{
		Type:       typeAttachments,
		Attributes: attachmentUpdateAttributes{Name: name},
	})

	return s.client.patch(ctx, memberPath(rt, resourceID, typeAttachments, attachmentID), doc)
}

// Delete removes one or more attachments from the given resource.
func (s *AttachmentsService) Delete(ctx context.Context, rt ResourceType, resourceID int64, ids ...int64) (*jsonapi.Response, error) {
	if err := rt.validate(); err != nil {
		return nil, err
	}

	doc, err := deletionDocument(typeAttachments, ids)
	if err != nil {
		return nil, err
	}

	return s.client.delete(ctx, relationshipPath(rt, resourceID, typeAttachments), doc)
}
