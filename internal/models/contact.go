package models

// Contact is a directory entry with branch management contact details.
// BranchName is free text and not a Branch reference.
type Contact struct {
	ID             string `json:"id"`
	BranchName     string `json:"branchName"`
	ManagerName    string `json:"managerName"`
	ManagerPhone   string `json:"managerPhone"`
	SupervisorName string `json:"supervisorName"`
}
