package uploads

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/domain"
)

// ErrUploadFailed marks a total upload failure. It is fatal to the
// submission attempt: the workflow must not issue a backend call.
var ErrUploadFailed = errors.New("upload failed")

// Resolution carries the settled field values the payload depends on.
type Resolution struct {
	Icon          string
	Apk           string
	FilesToDelete string
}

// Coordinator decides which assets need uploading, invokes the upload
// service and folds the results back into field values.
type Coordinator struct {
	svc Service
}

func NewCoordinator(svc Service) *Coordinator {
	return &Coordinator{svc: svc}
}

// Resolve settles the draft's upload slots. A slot participates only
// when its file input has size > 0; everything else falls back to the
// previous product's value so an untouched field is never cleared.
func (c *Coordinator) Resolve(ctx context.Context, draft domain.Draft) (Resolution, error) {
	var prevIcon, prevApk string
	if draft.Previous != nil {
		prevIcon = draft.Previous.Icon
		prevApk = draft.Previous.ApkLink
	}

	res := Resolution{Icon: prevIcon, Apk: prevApk}

	iconPending := draft.Icon.Pending()
	apkPending := draft.Apk.Pending()
	if !iconPending && !apkPending {
		return res, nil
	}

	files := make([]domain.FileInput, 0, 2)
	if iconPending {
		files = append(files, *draft.Icon)
	}
	if apkPending {
		files = append(files, *draft.Apk)
	}

	results, err := c.svc.Upload(ctx, files)
	if err != nil {
		return Resolution{}, errors.Wrapf(ErrUploadFailed, "upload service: %v", err)
	}
	if results == nil {
		return Resolution{}, errors.WithMessage(ErrUploadFailed, "upload service returned no result")
	}

	// Returned URLs pair positionally with the submission order:
	// icon first when present, then apk.
	idx := 0
	iconReplaced, apkReplaced := false, false
	if iconPending {
		if idx < len(results) && results[idx].URL != "" {
			res.Icon = results[idx].URL
			iconReplaced = true
		} else {
			zap.L().Warn("icon upload returned no url, keeping previous value",
				zap.String("previous", prevIcon))
		}
		idx++
	}
	if apkPending {
		if idx < len(results) && results[idx].URL != "" {
			res.Apk = results[idx].URL
			apkReplaced = true
		} else {
			zap.L().Warn("apk upload returned no url, keeping previous value",
				zap.String("previous", prevApk))
		}
	}

	if draft.IsUpdate() {
		res.FilesToDelete = deleteMarkers(prevIcon, prevApk, iconReplaced, apkReplaced)
	}
	return res, nil
}

// deleteMarkers builds the filesToDelete value from the superseded
// URLs. The icon marker is always terminated by a separator while the
// apk marker never is; the backend's garbage collector depends on that
// exact shape.
func deleteMarkers(prevIcon, prevApk string, iconReplaced, apkReplaced bool) string {
	var b strings.Builder
	if iconReplaced && prevIcon != "" {
		b.WriteString(trailingSegment(prevIcon))
		b.WriteString(",")
	}
	if apkReplaced && prevApk != "" {
		b.WriteString(trailingSegment(prevApk))
	}
	return b.String()
}

// trailingSegment extracts the object identifier from a storage URL.
func trailingSegment(u string) string {
	if i := strings.LastIndex(u, "/"); i >= 0 {
		return u[i+1:]
	}
	return u
}
