package model

// ChangeType 差异类型
type ChangeType string

const (
	ChangeNew       ChangeType = "NEW"       // 原空房，新导入有客
	ChangeModified  ChangeType = "MODIFIED"  // 状态或客人姓名变化
	ChangeDeparture ChangeType = "DEPARTURE" // 原有客，新导入为空房
	ChangeUnchanged ChangeType = "UNCHANGED" // 无变化，不进入变更列表
)

// RoomSnapshot 参与比对的字段快照
type RoomSnapshot struct {
	Status           RoomStatus `json:"status"`
	GuestDisplayName string     `json:"guestDisplayName"`
}

// ChangeEntry 单个房间的差异条目，仅在操作员确认期间存在，不落库
type ChangeEntry struct {
	RoomNumber string       `json:"roomNumber"`
	ChangeType ChangeType   `json:"changeType"`
	Before     RoomSnapshot `json:"before"`
	After      RoomSnapshot `json:"after"`
}
