package dto

type ExportResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
	Rows     int    `json:"rows"`
}
