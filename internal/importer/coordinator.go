package importer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/model"
	"github.com/Yarmin007/HK-Pulse-sub000/internal/parser"
	"github.com/Yarmin007/HK-Pulse-sub000/internal/roster"
	"github.com/Yarmin007/HK-Pulse-sub000/internal/store"
)

// Coordinator 导入协调器：读取表格 → 识别表头 → 解析记录 → 与存储态比对
// 只产出预览结果，不落库；落库由操作员确认后的 Approve 完成
type Coordinator struct {
	store  *store.Store
	engine *roster.Engine
}

// NewCoordinator 创建导入协调器
func NewCoordinator(st *store.Store, engine *roster.Engine) *Coordinator {
	return &Coordinator{
		store:  st,
		engine: engine,
	}
}

// ImportOptions 导入选项
type ImportOptions struct {
	FilePath   string    // 上传后暂存的文件路径
	Filename   string    // 原始文件名（用于日志展示）
	ReportDate time.Time // 本次导入针对的报表日期
}

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"`      // start/info/error/done
	Message   string      `json:"message"`   // 事件消息
	Data      interface{} `json:"data"`      // 附加数据
	Timestamp time.Time   `json:"timestamp"` // 时间戳
}

// ImportResult 导入预览结果
type ImportResult struct {
	ImportID    string                   `json:"importId"`    // 导入批次 ID，确认提交时回传
	ReportDate  string                   `json:"reportDate"`  // 报表日期
	FixedLayout bool                     `json:"fixedLayout"` // 是否命中固定版式报表
	HeaderRow   int                      `json:"headerRow"`   // 表头行索引
	TotalRows   int                      `json:"totalRows"`   // 数据区总行数
	ParsedRooms int                      `json:"parsedRooms"` // 解析出的房间数
	Changes     []model.ChangeEntry      `json:"changes"`     // 变更列表（仅含有变化的房间）
	Pending     []*model.GuestStayRecord `json:"-"`           // 待提交记录，确认前暂存于内存
}

// Import 执行导入预览，返回进度通道
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

// doImport 执行导入逻辑
func (c *Coordinator) doImport(opts ImportOptions, progressChan chan ProgressEvent) {
	c.sendProgress(progressChan, ProgressEvent{
		Type:    "start",
		Message: "开始解析入住报表",
		Data: map[string]string{
			"filename":   filepath.Base(opts.FilePath),
			"reportDate": opts.ReportDate.Format(time.DateOnly),
		},
		Timestamp: time.Now(),
	})

	// 打开 Excel 文件
	file, err := excelize.OpenFile(opts.FilePath)
	if err != nil {
		c.sendError(progressChan, fmt.Sprintf("打开文件失败: %v", err))
		return
	}
	defer file.Close()

	// 规整为单元格矩阵
	grid, err := parser.LoadGrid(file)
	if err != nil {
		c.sendError(progressChan, fmt.Sprintf("读取表格失败: %v", err))
		return
	}

	// 识别表头
	hm, err := parser.DetectHeader(grid)
	if err != nil {
		c.sendError(progressChan, err.Error())
		return
	}

	layout := "表头识别成功"
	if hm.FixedLayout {
		layout = "命中固定版式报表，使用内置列映射"
	}
	c.sendProgress(progressChan, ProgressEvent{
		Type:      "info",
		Message:   fmt.Sprintf("%s（表头行索引 %d）", layout, hm.HeaderRow),
		Data:      hm,
		Timestamp: time.Now(),
	})

	// 解析数据行
	parsed, err := parser.ParseRows(grid, hm, opts.ReportDate)
	if err != nil {
		c.sendError(progressChan, err.Error())
		return
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "info",
		Message:   fmt.Sprintf("解析出 %d 个房间的入住记录", len(parsed)),
		Timestamp: time.Now(),
	})

	// 与存储态比对
	pending, changes, err := c.engine.Preview(opts.ReportDate, parsed)
	if err != nil {
		c.sendError(progressChan, err.Error())
		return
	}

	result := &ImportResult{
		ImportID:    uuid.New().String(),
		ReportDate:  opts.ReportDate.Format(time.DateOnly),
		FixedLayout: hm.FixedLayout,
		HeaderRow:   hm.HeaderRow,
		TotalRows:   len(grid) - hm.HeaderRow - 1,
		ParsedRooms: len(parsed),
		Changes:     changes,
		Pending:     pending,
	}

	// 记录导入日志，日志失败不阻断预览
	filename := opts.Filename
	if filename == "" {
		filename = filepath.Base(opts.FilePath)
	}
	if err := c.store.CreateImportLog(result.ImportID, filename, result.ReportDate,
		result.TotalRows, result.ParsedRooms, len(changes)); err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "info",
			Message:   fmt.Sprintf("写入导入日志失败: %v", err),
			Timestamp: time.Now(),
		})
	}

	// done 事件携带待提交记录，丢弃会导致预览无法确认，必须送达
	progressChan <- ProgressEvent{
		Type:      "done",
		Message:   fmt.Sprintf("比对完成，共 %d 个房间有变更", len(changes)),
		Data:      result,
		Timestamp: time.Now(),
	}
}

func (c *Coordinator) sendError(progressChan chan ProgressEvent, message string) {
	c.sendProgress(progressChan, ProgressEvent{
		Type:      "error",
		Message:   message,
		Timestamp: time.Now(),
	})
}

// sendProgress 发送进度事件，通道满时丢弃避免阻塞导入
func (c *Coordinator) sendProgress(progressChan chan ProgressEvent, event ProgressEvent) {
	select {
	case progressChan <- event:
	default:
	}
}
