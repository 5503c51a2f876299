package planning

import "context"

type Service interface {
	GetPlanning(ctx context.Context, req GetPlanningRequest) ([]StaffPlanningView, error)
}
