package controllers

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/peerapat/gradlink/internal/app/services"
	"github.com/peerapat/gradlink/internal/pkg/apperrors"
)

// errMissingIdentity fires when a protected handler runs without the auth
// middleware having stored an account id. That is a wiring bug, not a
// client error.
var errMissingIdentity = apperrors.NewCustomError(apperrors.ErrTokenInvalid, "no authenticated account in request context")

// openImageUpload turns an optional multipart file into a service upload.
// A nil header means the form carried no image.
func openImageUpload(header *multipart.FileHeader) (*services.ImageUpload, func(), error) {
	if header == nil {
		return nil, func() {}, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	return &services.ImageUpload{
		File:     file,
		Filename: header.Filename,
	}, func() { file.Close() }, nil
}

// formFile fetches an optional multipart file by field name.
func formFile(ctx *gin.Context, field string) *multipart.FileHeader {
	header, err := ctx.FormFile(field)
	if err != nil {
		return nil
	}
	return header
}
