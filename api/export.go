package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"wellness/history"
	"wellness/middleware"
	"wellness/risk"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// exportHeaders 导出表头：日期、总分、运动时长、各类别风险
func exportHeaders(cats []risk.Category) []string {
	headers := []string{"日期", "总分", "运动(分钟)"}
	for _, cat := range cats {
		headers = append(headers, cat.Label()+"(%)")
	}
	return headers
}

// exportRow 单条历史记录对应的一行
func exportRow(e history.Entry, cats []risk.Category) []string {
	row := []string{e.Date, strconv.Itoa(e.Score), strconv.Itoa(e.WorkoutMinutes)}
	for _, cat := range cats {
		row = append(row, strconv.Itoa(e.Percentages[string(cat)]))
	}
	return row
}

// ExportCSV 导出历史记录为 CSV
// @Summary 导出历史记录
// @Description 导出当前会话的分析历史为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Success 200 {file} file "CSV 文件"
// @Router /api/v1/wellness/history/export/csv [get]
func (h *WellnessHandler) ExportCSV(c *gin.Context) {
	entries := h.store.Entries(middleware.GetSessionKey(c))
	cats := h.engine.Categories()

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(exportHeaders(cats)); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}
	for _, e := range entries {
		if err := writer.Write(exportRow(e, cats)); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("wellness_history_%s.csv", h.now().Format(history.DateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出历史记录为 Excel
// @Summary 导出历史记录为 Excel
// @Description 导出当前会话的分析历史为 xlsx 文件，末行为平均值
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Excel 文件"
// @Router /api/v1/wellness/history/export/excel [get]
func (h *WellnessHandler) ExportExcel(c *gin.Context) {
	entries := h.store.Entries(middleware.GetSessionKey(c))
	cats := h.engine.Categories()
	headers := exportHeaders(cats)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "评估历史"
	f.SetSheetName("Sheet1", sheetName)

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"DB2777"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
		NumFmt:    2,
	})

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", lastCol, 22)

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)

	sums := make([]int, len(headers))
	for i, e := range entries {
		row := i + 2
		values := []int{e.Score, e.WorkoutMinutes}
		for _, cat := range cats {
			values = append(values, e.Percentages[string(cat)])
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.Date)
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+2, row)
			f.SetCellValue(sheetName, cell, v)
			sums[j+1] += v
		}
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), dataStyle)
	}

	// 平均值行
	if len(entries) > 0 {
		summaryRow := len(entries) + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("平均（%d 条）", len(entries)))
		for j := 1; j < len(headers); j++ {
			cell, _ := excelize.CoordinatesToCellName(j+1, summaryRow)
			f.SetCellValue(sheetName, cell, float64(sums[j])/float64(len(entries)))
		}
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("%s%d", lastCol, summaryRow), summaryStyle)
	}

	filename := fmt.Sprintf("wellness_history_%s.xlsx", h.now().Format(history.DateLayout))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}
