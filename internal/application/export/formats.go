package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// EncodeCSV escribe la cabecera y una línea por venta, campos separados por ';' y fin de línea CRLF.
func EncodeCSV(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	w.UseCRLF = true

	if err := w.Write(Header()); err != nil {
		return nil, fmt.Errorf("export csv: cabeçalho: %w", err)
	}
	if err := w.WriteAll(r.Records()); err != nil {
		return nil, fmt.Errorf("export csv: linhas: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeXML genera <ExportacaoNFe> con un <Emitente> y un <ItemVenda> por venta, indentado con dos espacios.
func EncodeXML(r *Report) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ExportacaoNFe")
	issuer := root.CreateElement("Emitente")
	for i, field := range IssuerFields {
		issuer.CreateElement(field).SetText(r.Issuer[i])
	}

	sales := root.CreateElement("Vendas")
	for _, s := range r.Sales {
		item := sales.CreateElement("ItemVenda")
		for i, field := range SaleFields {
			item.CreateElement(field).SetText(s[i])
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export xml: %w", err)
	}
	return out, nil
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
