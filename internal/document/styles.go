package document

// stylesheet is the fixed document styling. The A4 geometry (210x297mm page,
// 12mm padding, zero print margin) and the print-color rules are part of the
// engine's output contract; the PDF conversion stage relies on them.
const stylesheet = `    /* A4 Page Setup */
    @page {
      size: A4;
      margin: 0;
    }

    * {
      -webkit-print-color-adjust: exact !important;
      color-adjust: exact !important;
      print-color-adjust: exact !important;
      margin: 0;
      padding: 0;
      box-sizing: border-box;
    }

    body {
      font-family: 'Inter', 'Helvetica Neue', Arial, sans-serif;
      background: white;
      color: #1f2937;
      font-size: 12px;
      line-height: 1.5;
    }

    .invoice-page {
      width: 210mm;
      min-height: 297mm;
      padding: 12mm;
      background: white;
      position: relative;
      border: 3px solid #f97316;
      border-radius: 8px;
      box-shadow: 0 3px 15px rgba(0,0,0,0.12);
      margin: 0 auto 5mm auto;
      display: flex;
      flex-direction: column;
    }

    /* Header */
    .invoice-header {
      margin-bottom: 2rem;
    }

    .header-content {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      margin-bottom: 1.5rem;
      gap: 2rem;
    }

    .company-section {
      display: flex;
      align-items: center;
      gap: 1rem;
    }

    .company-logo {
      height: 64px;
      width: auto;
      object-fit: contain;
    }

    .company-name {
      font-size: 24px;
      font-weight: 700;
      color: #f97316;
      margin-bottom: 0.25rem;
    }

    .company-details {
      font-size: 12px;
      color: #6b7280;
      line-height: 1.4;
      word-wrap: break-word;
      overflow-wrap: break-word;
    }

    .mt-1 {
      margin-top: 0.25rem;
    }

    .invoice-meta {
      text-align: right;
      min-width: 200px;
      font-size: 12px;
    }

    .invoice-meta-row {
      display: flex;
      justify-content: space-between;
      gap: 1.5rem;
      margin-bottom: 0.25rem;
    }

    .invoice-meta-row.total-due {
      margin-top: 0.5rem;
      padding-top: 0.5rem;
      border-top: 1px solid #6b7280;
    }

    .label {
      font-weight: 600;
    }

    .label-bold {
      font-weight: 700;
    }

    .amount-accent {
      font-weight: 700;
      color: #f97316;
    }

    /* Badge Row */
    .badge-row {
      display: grid;
      grid-template-columns: 1fr auto 1fr;
      align-items: center;
      gap: 1.5rem;
      margin: 2rem 0;
    }

    .badge-line {
      height: 4px;
      background-color: #f97316;
    }

    .badge-container {
      position: relative;
      padding: 0.75rem 2rem;
      background: white;
      border: 2px solid #f97316;
      border-radius: 8px;
    }

    .badge-text {
      font-size: 20px;
      font-weight: 700;
      letter-spacing: 0.05em;
      color: #f97316;
    }

    /* Bill To Section */
    .bill-to-section {
      margin-bottom: 1.5rem;
    }

    .bill-to-container {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      gap: 3rem;
    }

    .bill-to-left {
      flex: 2;
      min-width: 0;
    }

    .payment-status {
      flex: 1;
      max-width: 280px;
      min-width: 200px;
    }

    .section-title {
      font-size: 14px;
      font-weight: 600;
      color: #f97316;
      margin-bottom: 0.5rem;
    }

    .customer-info {
      font-size: 12px;
      line-height: 1.4;
      word-wrap: break-word;
      overflow-wrap: break-word;
    }

    .customer-name {
      font-weight: 700;
      font-size: 14px;
      margin-bottom: 0.25rem;
      word-wrap: break-word;
      overflow-wrap: break-word;
    }

    .payment-info {
      font-size: 12px;
    }

    .payment-row {
      display: flex;
      justify-content: space-between;
      align-items: center;
      margin-bottom: 0.25rem;
      padding: 0.25rem 0;
    }

    .payment-label {
      font-weight: 600;
    }

    .payment-value {
      font-weight: 700;
    }

    .paid-row {
      color: #10b981;
    }

    .balance-row {
      color: #10b981;
      font-weight: 700;
      border-top: 1px solid #10b981;
      padding-top: 0.5rem;
      margin-top: 0.25rem;
    }

    /* Continuation Header */
    .continuation-header {
      text-align: center;
      font-size: 12px;
      color: #6b7280;
      margin-bottom: 1rem;
    }

    /* Items Section */
    .items-section {
      margin-bottom: 1.5rem;
      flex-grow: 1;
      display: flex;
      flex-direction: column;
    }

    .items-header {
      display: flex;
      justify-content: space-between;
      align-items: center;
      margin-bottom: 0.5rem;
    }

    .items-range {
      font-size: 12px;
      color: #6b7280;
    }

    .items-table {
      width: 100%;
      border-collapse: collapse;
      flex-grow: 1;
    }

    .items-table th {
      background: #f97316;
      color: white;
      padding: 0.5rem 1rem;
      text-align: left;
      font-weight: 600;
      font-size: 12px;
    }

    .items-table td {
      padding: 0.75rem 1rem;
      border-bottom: 1px solid rgba(107, 114, 128, 0.2);
      font-size: 12px;
      line-height: 1.4;
    }

    .items-table tr.row-alt {
      background: rgba(0, 0, 0, 0.02);
    }

    .text-center {
      text-align: center;
    }

    .text-right {
      text-align: right;
    }

    .amount-col {
      font-weight: 500;
    }

    .continued-text {
      font-size: 12px;
      color: #6b7280;
      font-style: italic;
      margin-top: 0.5rem;
      text-align: right;
    }

    /* Totals Section */
    .totals-section {
      display: flex;
      justify-content: flex-end;
      margin-bottom: 1.5rem;
      margin-top: auto;
    }

    .totals-container {
      width: 100%;
      max-width: 360px;
    }

    .total-row {
      display: flex;
      justify-content: space-between;
      padding: 0.25rem 0;
      font-size: 14px;
    }

    .total-row-final {
      display: flex;
      justify-content: space-between;
      align-items: center;
      margin-top: 0.5rem;
      padding-top: 0.5rem;
      border-top: 2px solid #f97316;
    }

    .total-label {
      font-size: 16px;
      font-weight: 700;
      color: #f97316;
    }

    .total-amount {
      font-size: 20px;
      font-weight: 800;
      color: #f97316;
    }

    .amount-due-row {
      display: flex;
      justify-content: space-between;
      align-items: center;
      margin-top: 0.25rem;
      padding: 0.25rem 0;
      font-size: 14px;
      background: rgba(249, 115, 22, 0.1);
    }

    /* Footer */
    .invoice-footer {
      padding-top: 1.5rem;
      border-top: 2px solid #f97316;
      margin-top: auto;
    }

    .bank-details {
      margin-bottom: 1rem;
      padding: 1rem;
      border-radius: 8px;
      background: rgba(249, 115, 22, 0.06);
    }

    .bank-title {
      font-weight: 600;
      margin-bottom: 0.5rem;
      font-size: 14px;
      color: #f97316;
    }

    .bank-row {
      display: flex;
      justify-content: space-between;
      font-size: 12px;
      margin-bottom: 0.25rem;
    }

    .bank-label {
      font-weight: 500;
    }

    .notes-terms {
      display: grid;
      grid-template-columns: 1fr 1fr;
      gap: 1rem;
      margin-bottom: 0.75rem;
    }

    .notes-title, .terms-title {
      font-weight: 600;
      margin-bottom: 0.25rem;
      font-size: 12px;
      color: #f97316;
    }

    .notes-content, .terms-content {
      font-size: 12px;
    }

    /* Page Break - Critical for PDF generation */
    .page-break {
      page-break-after: always !important;
      break-after: page !important;
      height: 0 !important;
      overflow: hidden !important;
      margin: 0 !important;
      padding: 0 !important;
    }

    .invoice-page {
      page-break-inside: avoid !important;
      break-inside: avoid !important;
    }
`
