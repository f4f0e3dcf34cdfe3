// Package lib holds supporting modules that don't belong to a layer,
// such as background job processing (Redis/asynq).
package lib
