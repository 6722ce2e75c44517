package dto

// ItemCSVRecord fila del CSV de importación/exportación de ítems.
//
// Las cabeceras replican las que genera y acepta la interfaz de la aplicación:
// claves en minúscula salvo "Out Date", que se mapea a la fecha de salida.
// En importación, stockIn y balance son columnas informativas: el alta los
// recalcula a partir de stock1, stock2 y stockOut.
type ItemCSVRecord struct {
	Code                       string `csv:"code"`
	Description                string `csv:"description"`
	Category                   string `csv:"category"`
	Subcategory                string `csv:"subcategory"`
	Stock1                     string `csv:"stock1"`
	Stock2                     string `csv:"stock2"`
	StockIn                    string `csv:"stockIn"`
	StockOut                   string `csv:"stockOut"`
	Balance                    string `csv:"balance"`
	OutDate                    string `csv:"Out Date"`
	Purpose                    string `csv:"purpose"`
	BalanceAfterReconciliation string `csv:"balanceAfterReconciliation"`
	CreatedBy                  string `csv:"createdBy"`
	LastModifiedBy             string `csv:"lastModifiedBy"`
}
