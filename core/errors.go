package core

import (
	"fmt"
)

type ErrorNotFound struct {
	Entity string
	ID     string
}

func (e ErrorNotFound) Error() string {
	if e.Entity == "" {
		return "Not Found"
	}
	return fmt.Sprintf("%s %s Not Found", e.Entity, e.ID)
}

func NewErrorNotFound(entity, id string) ErrorNotFound {
	return ErrorNotFound{Entity: entity, ID: id}
}

type ErrorAlreadyExists struct {
	Entity string
}

func (e ErrorAlreadyExists) Error() string {
	if e.Entity == "" {
		return "Already Exists"
	}
	return fmt.Sprintf("%s Already Exists", e.Entity)
}

func NewErrorAlreadyExists(entity string) ErrorAlreadyExists {
	return ErrorAlreadyExists{Entity: entity}
}

// ErrorUnauthenticated means no valid actor is bound to the request
type ErrorUnauthenticated struct {
	Reason string
}

func (e ErrorUnauthenticated) Error() string {
	if e.Reason == "" {
		return "Unauthenticated"
	}
	return "Unauthenticated: " + e.Reason
}

func NewErrorUnauthenticated(reason string) ErrorUnauthenticated {
	return ErrorUnauthenticated{Reason: reason}
}

// ErrorUnauthorized means the actor was identified but the action was denied
type ErrorUnauthorized struct {
	ActorID string `json:"actorId"`
	Entity  string `json:"entity"`
	Action  string `json:"action"`
	Reason  string `json:"reason,omitempty"`
}

func (e ErrorUnauthorized) Error() string {
	msg := fmt.Sprintf("Permission Denied: %s cannot %s %s", e.ActorID, e.Action, e.Entity)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func NewErrorUnauthorized(actorID, entity, action, reason string) ErrorUnauthorized {
	return ErrorUnauthorized{ActorID: actorID, Entity: entity, Action: action, Reason: reason}
}

type ErrorAlreadyDeleted struct {
}

func (e ErrorAlreadyDeleted) Error() string {
	return "Already Deleted"
}

func NewErrorAlreadyDeleted() ErrorAlreadyDeleted {
	return ErrorAlreadyDeleted{}
}

type ErrorBadRequest struct {
	Reason string
}

func (e ErrorBadRequest) Error() string {
	return "Bad Request: " + e.Reason
}

func NewErrorBadRequest(reason string) ErrorBadRequest {
	return ErrorBadRequest{Reason: reason}
}
