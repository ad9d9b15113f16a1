package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/importer"
)

// Import 导入入住报表并预览变更 (SSE 流式响应)
// POST /api/import
// 表单字段：file 上传文件；reportDate 报表日期 (YYYY-MM-DD)
func (h *Handler) Import(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的表单数据"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}
	uploadedFile := files[0]

	reportDate, err := time.ParseInLocation(time.DateOnly, c.PostForm("reportDate"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reportDate 缺失或格式错误，应为 YYYY-MM-DD"})
		return
	}

	// 保存到临时目录
	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fmt.Sprintf("hkpulse_import_%d_%s", time.Now().Unix(), uploadedFile.Filename))

	if err := c.SaveUploadedFile(uploadedFile, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存文件失败"})
		return
	}

	// 清理临时文件
	defer os.Remove(tempFilePath)

	// 设置 SSE 响应头
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	coordinator := importer.NewCoordinator(h.store, h.engine)
	progressChan := coordinator.Import(importer.ImportOptions{
		FilePath:   tempFilePath,
		Filename:   uploadedFile.Filename,
		ReportDate: reportDate,
	})

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "不支持流式响应"})
		return
	}

	for event := range progressChan {
		// 预览结果暂存，等待操作员确认
		if event.Type == "done" {
			if result, ok := event.Data.(*importer.ImportResult); ok {
				h.previews.put(result.ImportID, reportDate, result.Pending)
			}
		}

		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}

		// SSE 格式: data: {json}\n\n
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}

// ApproveRequest 确认提交请求
type ApproveRequest struct {
	ImportID string `json:"importId" binding:"required"`
}

// Approve 确认提交导入预览
// POST /api/import/approve
func (h *Handler) Approve(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "importId 缺失"})
		return
	}

	pending, ok := h.previews.get(req.ImportID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "预览不存在或已过期，请重新导入"})
		return
	}

	if err := h.engine.Approve(pending.reportDate, pending.records); err != nil {
		// 提交失败需要操作员重新导入，不做自动重试
		_ = h.store.FinishImportLog(req.ImportID, "failed", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.previews.delete(req.ImportID)
	if err := h.store.FinishImportLog(req.ImportID, "committed", ""); err != nil {
		// 日志失败不影响已提交的数据
		c.JSON(http.StatusOK, gin.H{
			"reportDate": pending.reportDate.Format(time.DateOnly),
			"warning":    fmt.Sprintf("更新导入日志失败: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reportDate": pending.reportDate.Format(time.DateOnly),
	})
}

// ListImports 列出最近的导入日志
// GET /api/imports
func (h *Handler) ListImports(c *gin.Context) {
	logs, err := h.store.ListImportLogs(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imports": logs})
}
