package mail

const welcomeSubject = "Welcome aboard Signalist - your stock market toolkit is ready!"
const newsSummarySubject = "Your Daily Market Briefing 📰"

const welcomeTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
</head>
<body style="margin:0; padding:0; background-color:#050505; font-family:Arial, Helvetica, sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#050505; padding:24px 0;">
    <tr>
      <td align="center">
        <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="background-color:#141414; border-radius:8px; padding:32px;">
          <tr>
            <td style="color:#FDD458; font-size:22px; font-weight:bold; padding-bottom:24px;">Signalist</td>
          </tr>
          <tr>
            <td style="color:#FFFFFF; font-size:20px; font-weight:bold; padding-bottom:16px;">Welcome aboard, {{name}}!</td>
          </tr>
          <tr>
            <td style="color:#CCDADC; font-size:15px; line-height:1.6; padding-bottom:24px;">{{intro}}</td>
          </tr>
          <tr>
            <td style="color:#CCDADC; font-size:15px; line-height:1.6; padding-bottom:24px;">
              Here&#39;s what you can do right now: build your watchlist, set price alerts,
              and get your personalized market briefing every morning.
            </td>
          </tr>
          <tr>
            <td style="color:#6C7A89; font-size:12px; border-top:1px solid #2A2A2A; padding-top:16px;">
              You are receiving this email because you signed up for Signalist.
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

const newsSummaryTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
</head>
<body style="margin:0; padding:0; background-color:#050505; font-family:Arial, Helvetica, sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#050505; padding:24px 0;">
    <tr>
      <td align="center">
        <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="background-color:#141414; border-radius:8px; padding:32px;">
          <tr>
            <td style="color:#FDD458; font-size:22px; font-weight:bold; padding-bottom:8px;">Signalist</td>
          </tr>
          <tr>
            <td style="color:#6C7A89; font-size:13px; padding-bottom:24px;">Market Briefing &middot; {{date}}</td>
          </tr>
          <tr>
            <td style="color:#CCDADC; font-size:15px; line-height:1.6; padding-bottom:24px;">{{newsContent}}</td>
          </tr>
          <tr>
            <td style="color:#6C7A89; font-size:12px; border-top:1px solid #2A2A2A; padding-top:16px;">
              You are receiving this daily briefing because of your Signalist watchlist.
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
