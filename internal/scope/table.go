package scope

// Table is the closed set of logical tables that get a per-request view.
// The declaration order is the order views are created in.
type Table int

const (
	TableCompany Table = iota
	TableBuilding
	TableEmployee
	TableCredential
	TableClient
	TableVisitorPackage
	TableWifiParams
	TableRoom
	TableAccessPoint
	TableTempWifiAccess
	TableTPA
	TableWallet
	TableTPAxRoom

	tableCount
)

type tableInfo struct {
	logical    string
	physical   string
	primaryKey string
}

var tables = [tableCount]tableInfo{
	TableCompany:        {logical: "company", physical: "company", primaryKey: "companyId"},
	TableBuilding:       {logical: "building", physical: "building", primaryKey: "buildingId"},
	TableEmployee:       {logical: "employee", physical: "employee", primaryKey: "employeeId"},
	TableCredential:     {logical: "credential", physical: "password", primaryKey: "passwordId"},
	TableClient:         {logical: "client", physical: "client", primaryKey: "clientId"},
	TableVisitorPackage: {logical: "visitorpackage", physical: "visitorpackage", primaryKey: "visitorPackageId"},
	TableWifiParams:     {logical: "wifiparams", physical: "wifiparams", primaryKey: "wifiParamsId"},
	TableRoom:           {logical: "room", physical: "room", primaryKey: "roomId"},
	TableAccessPoint:    {logical: "accesspoint", physical: "nfcaccesspoints", primaryKey: "nfcReaderId"},
	TableTempWifiAccess: {logical: "tempwifiaccess", physical: "tempwifiaccess", primaryKey: "tempWifiAccessId"},
	TableTPA:            {logical: "tpa", physical: "tpa", primaryKey: "tpaId"},
	TableWallet:         {logical: "wallet", physical: "wallet", primaryKey: "linkWalletId"},
	TableTPAxRoom:       {logical: "tpaxroom", physical: "tpaxroom", primaryKey: "tpaId"},
}

// Tables lists every logical table in creation order.
func Tables() []Table {
	all := make([]Table, tableCount)
	for i := range all {
		all[i] = Table(i)
	}

	return all
}

func (t Table) valid() bool {
	return t >= 0 && t < tableCount
}

// Name is the logical name used as the view name prefix.
func (t Table) Name() string {
	if !t.valid() {
		return "unknown"
	}

	return tables[t].logical
}

// Physical is the base table inserts are written to.
func (t Table) Physical() string {
	if !t.valid() {
		return ""
	}

	return tables[t].physical
}

// PrimaryKey is the generated key column. For tpaxroom it is the first half
// of the composite key.
func (t Table) PrimaryKey() string {
	if !t.valid() {
		return ""
	}

	return tables[t].primaryKey
}

func (t Table) String() string {
	return t.Name()
}
