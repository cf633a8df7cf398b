// models/punishment_draw.go
package models

func (PunishmentDraw) TableName() string {
	return "Dev_PunishmentDraw"
}

type PunishmentDraw struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Text     string `gorm:"size:255;index:idx_instance_cycle"`
	Source   string `gorm:"size:20"` // "opensheet" or "fallback"
	Cycle    int64  `gorm:"index:idx_instance_cycle"`
	Instance string `gorm:"size:50;index:idx_instance_cycle"`
	ServedAt int64  `gorm:"index"`
}
