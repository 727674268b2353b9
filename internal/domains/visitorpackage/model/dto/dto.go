package dto

import (
	"time"

	"link/internal/domains/visitorpackage/model"
	walletModel "link/internal/domains/wallet/model"
	"link/shared"
)

type CreateVisitorPackageRequest struct {
	EmployeeID int64     `json:"employee_id" validate:"required,gt=0"`
	MacAddress string    `json:"mac_address" validate:"required,mac"`
	RoomIDs    []int64   `json:"room_ids"    validate:"required,min=1,dive,gt=0"`
	StartTime  time.Time `json:"start_time"  validate:"required"`
	EndTime    time.Time `json:"end_time"    validate:"required,gtfield=StartTime"`
	Limit      float64   `json:"limit"       validate:"gte=0"`
	Spent      float64   `json:"spent"       validate:"gte=0,ltefield=Limit"`
}

// CreatedVisitorPackage lists every row the creation workflow inserted.
type CreatedVisitorPackage struct {
	VisitorPackageID int64 `json:"visitor_package_id"`
	ClientID         int64 `json:"client_id"`
	TempWifiAccessID int64 `json:"temp_wifi_access_id"`
	TPAID            int64 `json:"tpa_id"`
	LinkWalletID     int64 `json:"link_wallet_id"`
}

type UpdateVisitorPackageRequest struct {
	StartTime *time.Time `json:"start_time" validate:"omitempty"`
	EndTime   *time.Time `json:"end_time"   validate:"omitempty"`
}

func (u *UpdateVisitorPackageRequest) ToPatch() model.Patch {
	return model.Patch{
		StartTime: u.StartTime,
		EndTime:   u.EndTime,
	}
}

type MoveRoomRequest struct {
	RoomID int64 `json:"room_id" validate:"required,gt=0"`
}

type SpendRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type WalletResponse struct {
	ID       int64   `json:"link_wallet_id"`
	MaxLimit float64 `json:"max_limit"`
	Spent    float64 `json:"spent"`
}

func (r *WalletResponse) FromModel(model walletModel.Wallet) {
	r.ID = model.ID
	r.MaxLimit = model.MaxLimit
	r.Spent = model.Spent
}

type VisitorPackageResponse struct {
	ID               int64           `json:"visitor_package_id"`
	TempWifiAccessID *int64          `json:"temp_wifi_access_id"`
	TPAID            *int64          `json:"tpa_id"`
	LinkWalletID     *int64          `json:"link_wallet_id"`
	EmployeeID       int64           `json:"employee_id"`
	ClientID         int64           `json:"client_id"`
	StartTime        time.Time       `json:"start_time"`
	EndTime          time.Time       `json:"end_time"`
	RoomIDs          []int64         `json:"room_ids,omitempty"`
	Wallet           *WalletResponse `json:"wallet,omitempty"`
}

func (r *VisitorPackageResponse) FromModel(model model.VisitorPackage) {
	r.ID = model.ID
	r.TempWifiAccessID = model.TempWifiAccessID
	r.TPAID = model.TPAID
	r.LinkWalletID = model.LinkWalletID
	r.EmployeeID = model.EmployeeID
	r.ClientID = model.ClientID
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
}

type GetVisitorPackagesResponse struct {
	VisitorPackages []VisitorPackageResponse `json:"visitor_packages"`
	TotalPage       int                      `json:"total_page"`
	TotalData       int                      `json:"total_data"`
}

func (r *GetVisitorPackagesResponse) FromModels(models []model.VisitorPackage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.VisitorPackages = make([]VisitorPackageResponse, len(models))
	for i, mod := range models {
		r.VisitorPackages[i].FromModel(mod)
	}
}
