package api

import "workspace-booking/internal/pkg/errs"

// domainDetail exposes the innermost domain message without the wrapping context.
func domainDetail(err error) string {
	return errs.UnwrapAll(err).Error()
}
