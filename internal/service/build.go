package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/kdduha/sceramath/internal/media"
	"github.com/kdduha/sceramath/internal/media/pdf"
	"github.com/kdduha/sceramath/internal/models"
	"github.com/kdduha/sceramath/internal/upstream"
)

func (s *SolveService) buildUpstreamReq(req *models.SolveRequest) (upstream.Request, error) {
	out := upstream.Request{
		SystemInstruction: systemInstruction,
		Prompt:            req.Prompt,
		Schema:            s.schema,
	}
	if req.Image == "" {
		return out, nil
	}

	uri, err := media.ParseDataURI(req.Image)
	if err != nil {
		return upstream.Request{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	s.logger.Printf("start preprocessing attachment: %s\n", uri.MimeType)
	defer s.logger.Printf("finish preprocessing attachment: %s\n", uri.MimeType)

	prepared, err := pdf.Prepare(uri)
	if err != nil {
		return upstream.Request{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	out.Image = &prepared
	return out, nil
}

func getCacheKey(req *models.SolveRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Prompt))
	h.Write([]byte{0})
	h.Write([]byte(req.Image))
	return hex.EncodeToString(h.Sum(nil))
}
