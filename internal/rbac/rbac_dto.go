package rbac

import "go-hrm/internal/domain"

type EnforceRequest = domain.EnforceRequest

type EnforceResponse = domain.EnforceResponse
