package dto

// ── 人数配置模块 DTO ──

// UpdateSettingsRequest 人数配置请求，表单字段名沿用班前设置页
type UpdateSettingsRequest struct {
	CE          int `form:"CE"          json:"ce"           binding:"min=0"`
	MI          int `form:"MI"          json:"mi"           binding:"min=0"`
	Trans       int `form:"Trans"       json:"trans"        binding:"min=0"`
	TransTarget int `form:"TransTarget" json:"trans_target" binding:"min=0"`
}

// SettingsResponse 当前人数目标
type SettingsResponse struct {
	Configured        bool `json:"configured"`
	RequiredHeadcount int  `json:"required_headcount"`
	RequiredTrans     int  `json:"required_trans"`
	TransCap          int  `json:"trans_cap"`
	Volume            int  `json:"volume"`
	SecondaryVolume   int  `json:"secondary_volume"`
	TransWorkers      int  `json:"trans_workers"`
}
