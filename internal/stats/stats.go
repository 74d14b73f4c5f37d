// Package stats computes derived equipment statistics. Every function is a
// full recomputation over the current collections; nothing here is patched
// incrementally, so the output can never drift from its inputs.
package stats

import (
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/entities"
)

func ComputeEquipmentStats(equipment []entities.Equipment) entities.EquipmentStats {
	s := entities.EquipmentStats{Total: len(equipment)}
	for _, eq := range equipment {
		switch eq.Status {
		case entities.StatusAvailable:
			s.Available++
		case entities.StatusInUse:
			s.InUse++
		case entities.StatusMaintenance:
			s.Maintenance++
		case entities.StatusRepair:
			s.Repair++
		case entities.StatusRetired:
			s.Retired++
		case entities.StatusLost:
			s.Lost++
		case entities.StatusDamaged:
			s.Damaged++
		}
	}
	return s
}

// ComputeDepartmentStats returns one row per department, in department order.
// utilizationRate is inUse/count*100 and 0 for an empty department.
func ComputeDepartmentStats(departments []entities.Department, equipment []entities.Equipment) []entities.DepartmentStats {
	rows := make([]entities.DepartmentStats, 0, len(departments))
	for _, dept := range departments {
		row := entities.DepartmentStats{
			DepartmentID:   dept.ID,
			DepartmentName: dept.Name,
		}
		for _, eq := range equipment {
			if eq.DepartmentID != dept.ID {
				continue
			}
			row.EquipmentCount++
			switch eq.Status {
			case entities.StatusAvailable:
				row.AvailableCount++
			case entities.StatusInUse:
				row.InUseCount++
			case entities.StatusMaintenance:
				row.MaintenanceCount++
			}
		}
		if row.EquipmentCount > 0 {
			row.UtilizationRate = float64(row.InUseCount) / float64(row.EquipmentCount) * 100
		}
		rows = append(rows, row)
	}
	return rows
}
