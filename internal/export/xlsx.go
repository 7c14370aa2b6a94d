package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/metrics"
)

// workbookHeaders are the column titles of the build sheet, in order.
// The slot columns follow slotOrder.
var workbookHeaders = []string{
	"Rank", "Score", "DPS", "Effective HP", "Total HP", "Mana Sustain", "Cost (EB)", "Unused SP",
	"Weapon", "Helmet", "Chestplate", "Leggings", "Boots", "Ring 1", "Ring 2", "Bracelet", "Necklace",
}

func (s *service) Workbook(class domain.Class, builds []domain.ScoredBuild) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := WorkbookSheetName
	if class.Valid() {
		sheet = fmt.Sprintf("%s %s", s.titler.String(string(class)), WorkbookSheetName)
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, header := range workbookHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(workbookHeaders), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	for i, sb := range builds {
		row := i + 2
		byLabel := equipmentByLabel(&sb.Build)
		values := []any{
			i + 1,
			round2(sb.Score),
			round2(sb.Derived.DPS),
			round2(sb.Derived.EffectiveHP.Combined),
			sb.Derived.EffectiveHP.TotalHP,
			round2(sb.Derived.ManaSustain),
			round2(sb.Derived.Cost),
			sb.Derived.UnusedSkillPoints,
		}
		for _, slot := range slotOrder {
			values = append(values, byLabel[slot])
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	metrics.BuildsExported.WithLabelValues("xlsx").Inc()
	return buf.Bytes(), nil
}
