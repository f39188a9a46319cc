package config

// DefaultSymbols returns the default NSE large/mid-cap scan universe in
// Yahoo Finance notation. The list may contain editing duplicates; Load
// dedupes it preserving order.
func DefaultSymbols() []string {
	return []string{
		"RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "BHARTIARTL.NS", "ICICIBANK.NS",
		"SBIN.NS", "INFY.NS", "HINDUNILVR.NS", "ITC.NS", "KOTAKBANK.NS",
		"LT.NS", "HCLTECH.NS", "BAJFINANCE.NS", "MARUTI.NS", "SUNPHARMA.NS",
		"ONGC.NS", "NTPC.NS", "TITAN.NS", "AXISBANK.NS", "ADANIENT.NS",
		"ADANIPORTS.NS", "BAJAJFINSV.NS", "WIPRO.NS", "ULTRACEMCO.NS", "POWERGRID.NS",
		"NESTLEIND.NS", "ASIANPAINT.NS", "JSWSTEEL.NS", "M&M.NS", "TATAMOTORS.NS",
		"COALINDIA.NS", "TATASTEEL.NS", "INDUSINDBK.NS", "TECHM.NS", "HINDALCO.NS",
		"DRREDDY.NS", "BPCL.NS", "DIVISLAB.NS", "BAJAJ-AUTO.NS", "GRASIM.NS",
		"CIPLA.NS", "EICHERMOT.NS", "TATACONSUM.NS", "APOLLOHOSP.NS", "HEROMOTOCO.NS",
		"BRITANNIA.NS", "SBILIFE.NS", "SHRIRAMFIN.NS", "HDFCLIFE.NS", "ICICIGI.NS",
		"PIDILITIND.NS", "HAVELLS.NS", "DABUR.NS", "SIEMENS.NS", "MARICO.NS",
		"GODREJCP.NS", "TORNTPHARM.NS", "COLPAL.NS", "BERGEPAINT.NS", "MUTHOOTFIN.NS",
		"UNIONBANK.NS", "BANKBARODA.NS", "CANBK.NS", "PNB.NS", "SAIL.NS",
		"NMDC.NS", "NATIONALUM.NS", "JINDALSTEL.NS", "JSPL.NS", "VEDL.NS",
		"HINDZINC.NS", "APLAPOLLO.NS", "ASHOKLEY.NS", "TVSMOTOR.NS", "BALKRISIND.NS",
		"MRF.NS", "CEAT.NS", "APOLLOTYRE.NS", "BOSCHLTD.NS", "MOTHERSON.NS",
		"BHARATFORG.NS", "ESCORTS.NS", "LTIM.NS", "MPHASIS.NS", "PERSISTENT.NS",
		"COFORGE.NS", "LTTS.NS", "OFSS.NS", "KPITTECH.NS", "TATAELXSI.NS",
		"ZOMATO.NS", "IRCTC.NS", "DMART.NS", "TRENT.NS", "PAGEIND.NS",
		"LALPATHLAB.NS", "METROPOLIS.NS", "MAXHEALTH.NS", "FORTIS.NS", "YESBANK.NS",
		"IDFCFIRSTB.NS", "FEDERALBNK.NS", "RBLBANK.NS", "AUBANK.NS", "CHOLAFIN.NS",
		"M&MFIN.NS", "MANAPPURAM.NS", "LICHSGFIN.NS", "PNBHOUSING.NS", "CANFINHOME.NS",
		"SBICARD.NS", "BANDHANBNK.NS", "ADANIPOWER.NS", "TATAPOWER.NS", "TORNTPOWER.NS",
		"CESC.NS", "NHPC.NS", "SJVN.NS", "RECLTD.NS", "PFC.NS",
		"IREDA.NS", "ATGL.NS", "IGL.NS", "MGL.NS", "GAIL.NS",
		"PETRONET.NS", "HINDPETRO.NS", "IOC.NS", "AUROPHARMA.NS", "LUPIN.NS",
		"BIOCON.NS", "ALKEM.NS", "IPCA.NS", "LAURUSLABS.NS", "GRANULES.NS",
		"NATCOPHARM.NS", "MEDPLUS.NS", "VOLTAS.NS", "BLUESTARCO.NS", "CROMPTON.NS",
		"VBL.NS", "UNITDSPR.NS", "RADICO.NS", "MCDOWELL-N.NS", "ZYDUSLIFE.NS",
		"GLENMARK.NS", "OBEROIRLTY.NS", "DLF.NS", "GODREJPROP.NS", "PRESTIGE.NS",
		"BRIGADE.NS", "PHOENIXLTD.NS", "SOBHA.NS", "INDHOTEL.NS", "EIHOTEL.NS",
		"LEMONTRE.NS", "BEL.NS", "HAL.NS", "COCHINSHIP.NS", "GRSE.NS",
		"MAZAGON.NS", "BEML.NS", "RVNL.NS", "IRFC.NS", "HUDCO.NS",
		"NBCC.NS", "BHARATDYN.NS", "DATAPATTNS.NS", "DELHIVERY.NS", "BLUEDART.NS",
		"POLYCAB.NS", "KEI.NS", "AMARARAJA.NS", "EXIDEIND.NS", "MINDA.NS",
		"ENDURANCE.NS", "SUNDRMFAST.NS", "AVANTIFEEDS.NS", "SKFINDIA.NS", "SCHAEFFLER.NS",
		"TIMKEN.NS", "GRINDWELL.NS", "CUMMINSIND.NS", "THERMAX.NS", "BHEL.NS",
		"ABB.NS", "AIAENG.NS", "ELGIEQUIP.NS", "KIRLOSENG.NS", "FINOLEX.NS",
		"HBLPOWER.NS", "KARURVYSYA.NS", "CUB.NS", "EQUITASBNK.NS", "UJJIVANSFB.NS",
		"CREDITACC.NS", "SPANDANA.NS", "HOMEFIRST.NS", "AAVAS.NS", "MANYAVAR.NS",
		"RAYMOND.NS", "ABFRL.NS", "TTKPRESTIG.NS", "WHIRLPOOL.NS", "ORIENTELEC.NS",
	}
}
