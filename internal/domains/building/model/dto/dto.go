package dto

import (
	"link/internal/domains/building/model"
	wifiModel "link/internal/domains/wifiparams/model"
	"link/shared"
)

type WifiParamsRequest struct {
	SSID        string `json:"ssid"         validate:"required,notblank,max=32"`
	NetworkType string `json:"network_type" validate:"required,oneof=WPA WPA2 WPA3 WEP OPEN"`
	Password    string `json:"password"     validate:"omitempty,max=63"`
}

func (w *WifiParamsRequest) ToModel() wifiModel.WifiParams {
	return wifiModel.WifiParams{
		SSID:        w.SSID,
		NetworkType: w.NetworkType,
		Password:    w.Password,
	}
}

type CreateBuildingRequest struct {
	Latitude   *string            `json:"latitude"    validate:"omitempty,latitude"`
	Longitude  *string            `json:"longitude"   validate:"omitempty,longitude"`
	BranchName string             `json:"branch_name" validate:"required,notblank,max=255"`
	CompanyID  int64              `json:"company_id"  validate:"required,gt=0"`
	Wifi       *WifiParamsRequest `json:"wifi"        validate:"omitempty"`
}

func (c *CreateBuildingRequest) ToModel(wifiParamsID *int64) model.Building {
	return model.Building{
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		BranchName:   c.BranchName,
		CompanyID:    c.CompanyID,
		WifiParamsID: wifiParamsID,
	}
}

type UpdateBuildingRequest struct {
	Latitude   *string `json:"latitude"    validate:"omitempty,latitude"`
	Longitude  *string `json:"longitude"   validate:"omitempty,longitude"`
	BranchName *string `json:"branch_name" validate:"omitempty,max=255"`
}

func (u *UpdateBuildingRequest) ToPatch() model.Patch {
	return model.Patch{
		Latitude:   u.Latitude,
		Longitude:  u.Longitude,
		BranchName: u.BranchName,
	}
}

type UpdateWifiParamsRequest struct {
	SSID        *string `json:"ssid"         validate:"omitempty,max=32"`
	NetworkType *string `json:"network_type" validate:"omitempty,oneof=WPA WPA2 WPA3 WEP OPEN"`
	Password    *string `json:"password"     validate:"omitempty,max=63"`
}

func (u *UpdateWifiParamsRequest) ToPatch() wifiModel.Patch {
	return wifiModel.Patch{
		SSID:        u.SSID,
		NetworkType: u.NetworkType,
		Password:    u.Password,
	}
}

type BuildingResponse struct {
	ID           int64   `json:"building_id"`
	Latitude     *string `json:"latitude"`
	Longitude    *string `json:"longitude"`
	BranchName   string  `json:"branch_name"`
	CompanyID    int64   `json:"company_id"`
	WifiParamsID *int64  `json:"wifi_params_id"`
}

func (r *BuildingResponse) FromModel(model model.Building) {
	r.ID = model.ID
	r.Latitude = model.Latitude
	r.Longitude = model.Longitude
	r.BranchName = model.BranchName
	r.CompanyID = model.CompanyID
	r.WifiParamsID = model.WifiParamsID
}

type GetBuildingsResponse struct {
	Buildings []BuildingResponse `json:"buildings"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetBuildingsResponse) FromModels(models []model.Building, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Buildings = make([]BuildingResponse, len(models))
	for i, mod := range models {
		r.Buildings[i].FromModel(mod)
	}
}

// WifiParamsResponse carries the network password; it is only served to
// callers that can already see the building.
type WifiParamsResponse struct {
	ID          int64  `json:"wifi_params_id"`
	SSID        string `json:"ssid"`
	NetworkType string `json:"network_type"`
	Password    string `json:"password"`
}

func (r *WifiParamsResponse) FromModel(model wifiModel.WifiParams) {
	r.ID = model.ID
	r.SSID = model.SSID
	r.NetworkType = model.NetworkType
	r.Password = model.Password
}
