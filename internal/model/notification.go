package model

// 通知与重载任务中使用的表名
const (
	TableShippingRates = "shipping_rates"
	TablePostalZones   = "postal_code_zones"
)

// 运行状态
const (
	RunStatusSuccess = "SUCCESS"
	RunStatusFailed  = "FAILED"
)

// TablesGenerated 表重新生成的广播消息（Redis 频道）
// 成功时在 CSV 落盘后发送，失败时 Status 为 FAILED 并带 Error
type TablesGenerated struct {
	RunID       string `json:"run_id"`
	Table       string `json:"table"`
	File        string `json:"file"`   // CSV 路径，与 output.dir 配置一致
	Rows        int    `json:"rows"`   // 数据行数，不含表头
	Status      string `json:"status"` // SUCCESS / FAILED
	Error       string `json:"error,omitempty"`
	GeneratedAt int64  `json:"generated_at"` // unix 秒
}

// ReloadTablesJob 通知后端重新加载表的任务
type ReloadTablesJob struct {
	RunID       string `json:"run_id"`
	Table       string `json:"table"`
	File        string `json:"file"`
	Rows        int    `json:"rows"`
	RequestedAt int64  `json:"requested_at"`
}
