package routing

import "dispatch/internal/entities"

func toDomain(m *matrixResponse) entities.RouteMatrix {
	legs := make([]entities.RouteLeg, 0, len(m.Legs))
	for _, leg := range m.Legs {
		legs = append(legs, entities.RouteLeg{
			Status:   entities.LegStatus(leg.Status),
			Address:  leg.Address,
			Distance: leg.Distance,
			Duration: leg.Duration,
		})
	}
	return entities.RouteMatrix{
		OriginAddress: m.OriginAddress,
		Legs:          legs,
	}
}
